package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddRemoveContains(t *testing.T) {
	set := NewSet[int]()
	require.Equal(t, 0, set.Len())

	set.Add(3)
	set.Add(3)
	set.Add(5)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))

	set.Remove(3)
	set.Remove(42)
	assert.False(t, set.Contains(3))
	assert.Equal(t, 1, set.Len())
}

func TestSet_Equal(t *testing.T) {
	assert.True(t, NewSet(1, 2, 3).Equal(NewSet(3, 2, 1)))
	assert.False(t, NewSet(1, 2).Equal(NewSet(1, 2, 3)))
	assert.False(t, NewSet(1, 2, 4).Equal(NewSet(1, 2, 3)))
}

func TestSet_Difference(t *testing.T) {
	difference := NewSet(1, 2, 3, 4).Difference(NewSet(2, 4, 6))
	assert.True(t, difference.Equal(NewSet(1, 3)))
}

func TestSet_IntersectionEx(t *testing.T) {
	t.Run("subset", func(t *testing.T) {
		intersection, isSubset := NewSet(1, 2).IntersectionEx(NewSet(1, 2, 3))
		assert.True(t, isSubset)
		assert.True(t, intersection.Equal(NewSet(1, 2)))
	})

	t.Run("overlap", func(t *testing.T) {
		intersection, isSubset := NewSet(1, 2, 5).IntersectionEx(NewSet(1, 2, 3))
		assert.False(t, isSubset)
		assert.True(t, intersection.Equal(NewSet(1, 2)))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Equal(t, 0, NewSet(7).Intersection(NewSet(1, 2)).Len())
	})
}
