package zoom

import (
	"fmt"
	"strconv"
)

// Transform is what the playback surface applies to the video element at a
// given time.
type Transform struct {
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`
	Scale   float64 `json:"scale"`
	Active  bool    `json:"active"`
	BlockID int64   `json:"block_id,omitempty"`
}

// Identity is the no-op transform used when no block is active.
var Identity = Transform{Scale: 1}

// TransformAt returns the transform for the block active at t, or Identity.
func TransformAt(s *Store, t float64) Transform {
	b, ok := s.FindActiveBlock(t)
	if !ok {
		return Identity
	}
	return Transform{
		OriginX: b.X,
		OriginY: b.Y,
		Scale:   b.Scale,
		Active:  true,
		BlockID: b.ID,
	}
}

// CSS returns the transform-origin and transform property values for the
// preview element.
func (t Transform) CSS() (origin, transform string) {
	origin = fmt.Sprintf("%spx %spx", formatFloat(t.OriginX), formatFloat(t.OriginY))
	transform = fmt.Sprintf("scale(%s)", formatFloat(t.Scale))
	return origin, transform
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
