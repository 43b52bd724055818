package zoom

import "errors"

var (
	ErrInvalidRange = errors.New("invalid time range")
	ErrOverlap      = errors.New("time range overlaps an existing zoom block")
	ErrNotFound     = errors.New("zoom block not found")
)
