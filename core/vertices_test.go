package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/starlane/core"
)

func TestVertexStore_AddFind(t *testing.T) {
	s := core.NewVertexStore[string](0)

	i0, err := s.Add(-5, "neg")
	assert.NoError(t, err)
	i1, err := s.Add(1000, "big")
	assert.NoError(t, err)

	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 0, s.Find(-5), "ids need not be contiguous or positive")
	assert.Equal(t, 1, s.Find(1000))
	assert.Equal(t, core.NotFound, s.Find(1))
	assert.Equal(t, 2, s.Len())
}

func TestVertexStore_Duplicate(t *testing.T) {
	s := core.NewVertexStore[int](2)
	_, err := s.Add(7, 1)
	assert.NoError(t, err)

	_, err = s.Add(7, 2)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
	assert.Equal(t, 1, s.Len())

	v, ok := s.At(0)
	assert.True(t, ok)
	assert.Equal(t, 1, v.Payload)
}

func TestVertexStore_Resolve(t *testing.T) {
	s := core.NewVertexStore[string](0)
	_, _ = s.Add(1, "A")
	_, _ = s.Add(2, "B")

	u, v, err := s.Resolve(2, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, u)
	assert.Equal(t, 0, v)

	_, _, err = s.Resolve(3, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, _, err = s.Resolve(1, 3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVertexStore_AtOutOfRange(t *testing.T) {
	s := core.NewVertexStore[string](0)
	_, ok := s.At(0)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}
