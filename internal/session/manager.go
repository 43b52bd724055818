package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"videothingy/zoom-editor/internal/zoom"
)

// ErrSessionNotFound is returned when a session id is unknown or has expired.
var ErrSessionNotFound = errors.New("editing session not found")

// Session is one open editor. Its store is only reached through Do, which
// serializes access.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	store    *zoom.Store
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's store.
func (s *Session) Do(fn func(store *zoom.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.store)
}

// LastSeen returns the last time the session was accessed.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Manager keeps the in-memory editing sessions.
type Manager struct {
	settings zoom.Settings
	ttl      time.Duration
	logger   *logrus.Logger
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a manager whose sessions expire after ttl of inactivity.
// A ttl of zero disables expiry.
func NewManager(settings zoom.Settings, ttl time.Duration, logger *logrus.Logger) *Manager {
	return &Manager{
		settings: settings,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create opens a new session with an empty store.
func (m *Manager) Create() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		store:     zoom.NewStore(m.settings),
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.WithField("session_id", s.ID).Info("Editing session created")
	return s
}

// Get returns the session and marks it as active.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.touch(m.now())
	return s, nil
}

// Delete discards the session and every block in it.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	m.logger.WithField("session_id", id).Info("Editing session closed")
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the ttl and returns how many
// were removed.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen()) > m.ttl {
			delete(m.sessions, id)
			evicted++
			m.logger.WithField("session_id", id).Info("Editing session expired")
		}
	}
	return evicted
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if m.ttl <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.logger.Infof("Session sweeper running every %s (ttl %s)", interval, m.ttl)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Session sweeper stopping")
			return nil
		case <-ticker.C:
			if n := m.Sweep(m.now()); n > 0 {
				m.logger.WithField("evicted", n).Debug("Swept idle sessions")
			}
		}
	}
}
