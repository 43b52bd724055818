package zoom

import (
	"fmt"
	"time"
)

// AddPolicy controls what Add does when the new block overlaps an existing one.
type AddPolicy string

const (
	// AddPolicyStrict rejects an overlapping add with ErrOverlap.
	AddPolicyStrict AddPolicy = "strict"
	// AddPolicyLenient inserts the overlapping block anyway and only reports the
	// overlap. The collection may then hold overlapping blocks.
	AddPolicyLenient AddPolicy = "lenient"
)

// NoExclude is passed to IsOverlapping when no block should be skipped.
// Block IDs are always positive.
const NoExclude int64 = 0

// Settings holds the defaults a Store applies to new blocks.
type Settings struct {
	DefaultScale    float64   `yaml:"default_scale"`
	DefaultDuration float64   `yaml:"default_duration"`
	ShiftIncrement  float64   `yaml:"shift_increment"`
	AddPolicy       AddPolicy `yaml:"add_policy"`
}

// DefaultSettings matches the editor's stock behavior.
func DefaultSettings() Settings {
	return Settings{
		DefaultScale:    1.5,
		DefaultDuration: 5,
		ShiftIncrement:  5,
		AddPolicy:       AddPolicyStrict,
	}
}

// AddResult describes the outcome of an add.
type AddResult struct {
	Block    Block `json:"block"`
	Inserted bool  `json:"inserted"`
	// Overlap is set when the requested range collided with an existing block.
	// The proposal has already been shifted when this is true.
	Overlap  bool  `json:"overlap"`
	Proposal Range `json:"proposal"`
}

// Store is the ordered collection of zoom blocks for one editing session.
// It is not safe for concurrent use.
type Store struct {
	settings Settings
	blocks   []Block
	selected int64
	proposal Range
	lastID   int64
	now      func() time.Time
}

// NewStore creates an empty store. Zero-valued settings fall back to DefaultSettings.
func NewStore(settings Settings) *Store {
	def := DefaultSettings()
	if settings.DefaultScale <= 0 {
		settings.DefaultScale = def.DefaultScale
	}
	if settings.DefaultDuration <= 0 {
		settings.DefaultDuration = def.DefaultDuration
	}
	if settings.ShiftIncrement <= 0 {
		settings.ShiftIncrement = def.ShiftIncrement
	}
	if settings.AddPolicy == "" {
		settings.AddPolicy = def.AddPolicy
	}
	return &Store{
		settings: settings,
		proposal: Range{Start: 0, End: settings.DefaultDuration},
		now:      time.Now,
	}
}

// Settings returns the store's effective settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// Proposal is the range the next AddProposed will use.
func (s *Store) Proposal() Range {
	return s.proposal
}

// Len returns the number of blocks.
func (s *Store) Len() int {
	return len(s.blocks)
}

// Blocks returns a copy of the blocks in insertion order.
func (s *Store) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Get returns the block with the given id.
func (s *Store) Get(id int64) (Block, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Block{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.blocks[i], nil
}

// Add creates a block over [start, end) with default position and scale.
func (s *Store) Add(start, end float64) (AddResult, error) {
	r := Range{Start: start, End: end}
	if !r.Valid() {
		return AddResult{Proposal: s.proposal}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}

	block := Block{
		ID:        s.nextID(),
		StartTime: start,
		EndTime:   end,
		Scale:     s.settings.DefaultScale,
	}

	res := AddResult{Block: block}
	if s.IsOverlapping(r, NoExclude) {
		res.Overlap = true
		s.shiftProposal()
		if s.settings.AddPolicy == AddPolicyStrict {
			res.Proposal = s.proposal
			return res, fmt.Errorf("%w: %s", ErrOverlap, r)
		}
	}

	s.blocks = append(s.blocks, block)
	res.Inserted = true
	res.Proposal = s.proposal
	return res, nil
}

// AddProposed adds a block over the current proposal.
func (s *Store) AddProposed() (AddResult, error) {
	return s.Add(s.proposal.Start, s.proposal.End)
}

// Update merges patch into the block with the given id. The block is left
// unchanged when the merged range is invalid or collides with another block.
func (s *Store) Update(id int64, patch Patch) (Block, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Block{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	current := s.blocks[i]
	merged := patch.Apply(current)
	if !merged.Range().Valid() {
		return current, fmt.Errorf("%w: %s", ErrInvalidRange, merged.Range())
	}
	if s.IsOverlapping(merged.Range(), id) {
		s.shiftProposal()
		return current, fmt.Errorf("%w: block %d to %s", ErrOverlap, id, merged.Range())
	}

	s.blocks[i] = merged
	return merged, nil
}

// Delete removes the block with the given id and clears the selection if it
// pointed at that block.
func (s *Store) Delete(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
	if s.selected == id {
		s.selected = 0
	}
	return nil
}

// IsOverlapping reports whether candidate collides with any block other than excludeID.
func (s *Store) IsOverlapping(candidate Range, excludeID int64) bool {
	for _, b := range s.blocks {
		if b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Range()) {
			return true
		}
	}
	return false
}

// FindActiveBlock returns the first block, in insertion order, whose range
// contains t.
func (s *Store) FindActiveBlock(t float64) (Block, bool) {
	for _, b := range s.blocks {
		if b.Range().Contains(t) {
			return b, true
		}
	}
	return Block{}, false
}

// Select marks the block with the given id as selected.
func (s *Store) Select(id int64) error {
	if s.indexOf(id) < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.selected = id
	return nil
}

func (s *Store) ClearSelection() {
	s.selected = 0
}

// Selected returns the selected block, if any.
func (s *Store) Selected() (Block, bool) {
	if s.selected == 0 {
		return Block{}, false
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		return Block{}, false
	}
	return s.blocks[i], true
}

func (s *Store) shiftProposal() {
	s.proposal = s.proposal.Shift(s.settings.ShiftIncrement)
}

// nextID derives ids from the creation time in milliseconds, bumped so they
// stay strictly increasing within the store.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) indexOf(id int64) int {
	for i, b := range s.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
