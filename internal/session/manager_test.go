package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videothingy/zoom-editor/internal/zoom"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(ttl time.Duration) (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	m := NewManager(zoom.DefaultSettings(), ttl, quietLogger())
	m.now = clock.Now
	return m, clock
}

func TestCreateAndGet(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	s := m.Create()
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	a := m.Create()
	b := m.Create()

	require.NoError(t, a.Do(func(store *zoom.Store) error {
		_, err := store.Add(0, 5)
		return err
	}))

	var n int
	require.NoError(t, b.Do(func(store *zoom.Store) error {
		n = store.Len()
		return nil
	}))
	assert.Equal(t, 0, n)
}

func TestDelete(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	s := m.Create()

	require.NoError(t, m.Delete(s.ID))
	assert.Equal(t, 0, m.Len())
	assert.ErrorIs(t, m.Delete(s.ID), ErrSessionNotFound)
}

func TestSweepEvictsOnlyIdleSessions(t *testing.T) {
	m, clock := newTestManager(10 * time.Minute)
	idle := m.Create()
	active := m.Create()

	clock.Advance(8 * time.Minute)
	_, err := m.Get(active.ID)
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, m.Sweep(clock.Now()))

	_, err = m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(active.ID)
	assert.NoError(t, err)
}

func TestSweepDisabledWithoutTTL(t *testing.T) {
	m, clock := newTestManager(0)
	m.Create()

	clock.Advance(24 * time.Hour)
	assert.Equal(t, 0, m.Sweep(clock.Now()))
	assert.Equal(t, 1, m.Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, 10*time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
