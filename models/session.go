package models

import (
	"time"

	"github.com/google/uuid"

	"videothingy/zoom-editor/internal/zoom"
)

// SessionSnapshot is the full editor state returned to the browser.
type SessionSnapshot struct {
	ID              uuid.UUID      `json:"id"`
	Blocks          []zoom.Block   `json:"blocks"`
	SelectedBlockID *int64         `json:"selected_block_id,omitempty"`
	Proposal        zoom.Range     `json:"proposal"`
	AddPolicy       zoom.AddPolicy `json:"add_policy"`
	CreatedAt       time.Time      `json:"created_at"`
}

// NewSessionSnapshot captures the state of store. The caller must hold the
// session while calling it.
func NewSessionSnapshot(id uuid.UUID, createdAt time.Time, store *zoom.Store) SessionSnapshot {
	snap := SessionSnapshot{
		ID:        id,
		Blocks:    store.Blocks(),
		Proposal:  store.Proposal(),
		AddPolicy: store.Settings().AddPolicy,
		CreatedAt: createdAt,
	}
	if sel, ok := store.Selected(); ok {
		selID := sel.ID
		snap.SelectedBlockID = &selID
	}
	return snap
}
