package zoom

import (
	"fmt"
	"math"
)

// Range is a half-open [Start, End) interval on the video timeline, in seconds.
type Range struct {
	Start float64 `json:"start_time"`
	End   float64 `json:"end_time"`
}

// Valid reports whether the range is finite and non-empty.
func (r Range) Valid() bool {
	if math.IsNaN(r.Start) || math.IsNaN(r.End) || math.IsInf(r.Start, 0) || math.IsInf(r.End, 0) {
		return false
	}
	return r.Start < r.End
}

// Contains reports whether t falls inside [Start, End).
func (r Range) Contains(t float64) bool {
	return t >= r.Start && t < r.End
}

// Overlaps reports whether r collides with other. Ranges that only touch at a
// boundary do not overlap.
func (r Range) Overlaps(other Range) bool {
	return (r.Start >= other.Start && r.Start < other.End) ||
		(r.End > other.Start && r.End <= other.End) ||
		(r.Start <= other.Start && r.End >= other.End)
}

// Shift returns the range moved forward by d seconds.
func (r Range) Shift(d float64) Range {
	return Range{Start: r.Start + d, End: r.End + d}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g)", r.Start, r.End)
}

// Block is a time-ranged pan/zoom effect on the timeline.
type Block struct {
	ID        int64   `json:"id"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	X         float64 `json:"x"`     // transform origin, pixels
	Y         float64 `json:"y"`     // transform origin, pixels
	Scale     float64 `json:"scale"` // zoom multiplier
}

// Range returns the block's time range.
func (b Block) Range() Range {
	return Range{Start: b.StartTime, End: b.EndTime}
}

// Patch carries the fields a caller wants to change on a block.
// Nil fields are left untouched.
type Patch struct {
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	Scale     *float64 `json:"scale,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.StartTime == nil && p.EndTime == nil && p.X == nil && p.Y == nil && p.Scale == nil
}

// Apply returns b with the patch's non-nil fields merged in. The ID is never changed.
func (p Patch) Apply(b Block) Block {
	if p.StartTime != nil {
		b.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		b.EndTime = *p.EndTime
	}
	if p.X != nil {
		b.X = *p.X
	}
	if p.Y != nil {
		b.Y = *p.Y
	}
	if p.Scale != nil {
		b.Scale = *p.Scale
	}
	return b
}
