package models

import "videothingy/zoom-editor/internal/zoom"

// BlockMutation is returned by every route that adds, edits or removes a
// block so the timeline can re-render from a single response.
type BlockMutation struct {
	Block    *zoom.Block  `json:"block,omitempty"`
	Blocks   []zoom.Block `json:"blocks"`
	Proposal zoom.Range   `json:"proposal"`
	Overlap  bool         `json:"overlap"`
}

// PlaybackTransform is the transform for one playback tick, with the CSS
// values the preview applies directly.
type PlaybackTransform struct {
	Time float64 `json:"t"`
	zoom.Transform
	TransformOrigin string `json:"transform_origin"`
	CSSTransform    string `json:"transform"`
}

// NewPlaybackTransform wraps tr for the playback surface.
func NewPlaybackTransform(t float64, tr zoom.Transform) PlaybackTransform {
	origin, transform := tr.CSS()
	return PlaybackTransform{
		Time:            t,
		Transform:       tr,
		TransformOrigin: origin,
		CSSTransform:    transform,
	}
}
