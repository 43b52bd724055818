package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformAtIdentityWhenIdle(t *testing.T) {
	s := newTestStore(AddPolicyStrict)
	assert.Equal(t, Identity, TransformAt(s, 3))
}

func TestTransformAtActiveBlock(t *testing.T) {
	s := newTestStore(AddPolicyStrict)
	a := mustAdd(t, s, 2, 6)
	_, err := s.Update(a.ID, Patch{X: f(320), Y: f(180), Scale: f(2)})
	require.NoError(t, err)

	tr := TransformAt(s, 4)
	assert.Equal(t, Transform{OriginX: 320, OriginY: 180, Scale: 2, Active: true, BlockID: a.ID}, tr)
	assert.Equal(t, Identity, TransformAt(s, 6))
}

func TestTransformCSS(t *testing.T) {
	origin, transform := Transform{OriginX: 12.5, OriginY: 40, Scale: 1.5}.CSS()
	assert.Equal(t, "12.5px 40px", origin)
	assert.Equal(t, "scale(1.5)", transform)

	origin, transform = Identity.CSS()
	assert.Equal(t, "0px 0px", origin)
	assert.Equal(t, "scale(1)", transform)
}

func TestPatchApply(t *testing.T) {
	b := Block{ID: 7, StartTime: 1, EndTime: 2, X: 3, Y: 4, Scale: 1.5}

	assert.True(t, Patch{}.Empty())
	assert.Equal(t, b, Patch{}.Apply(b))

	got := Patch{StartTime: f(0.5), Y: f(0)}.Apply(b)
	assert.Equal(t, Block{ID: 7, StartTime: 0.5, EndTime: 2, X: 3, Y: 0, Scale: 1.5}, got)
}
