package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grpc-boot/container"
)

func TestNewArrayListWithCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		l, err := NewArrayListWithCapacity[int](capacity)
		require.ErrorIs(t, err, container.ErrInvalidArgument)
		assert.Nil(t, l)
	}

	l, err := NewArrayListWithCapacity[int](2)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Capacity())
	assert.True(t, l.IsEmpty())
}

func TestArrayList_Grow(t *testing.T) {
	l := NewArrayList[int]()
	require.Equal(t, container.DefaultCapacity, l.Capacity())

	wantCapacity := []int{5, 5, 5, 5, 5, 8, 8, 8, 13}
	for index, want := range wantCapacity {
		require.NoError(t, l.Add(index))
		if l.Capacity() != want {
			t.Fatalf("after %d adds want capacity %d, got %d", index+1, want, l.Capacity())
		}
		require.LessOrEqual(t, l.Size(), l.Capacity())
	}

	for index := 0; index < l.Size(); index++ {
		value, err := l.Get(index)
		require.NoError(t, err)
		assert.Equal(t, index, value)
	}
}

func TestArrayList_InsertGrows(t *testing.T) {
	l, err := NewArrayListWithCapacity[int](1)
	require.NoError(t, err)

	require.NoError(t, l.Insert(0, 2))
	require.NoError(t, l.Insert(0, 1))
	require.NoError(t, l.Insert(1, 5))
	assert.Equal(t, []int{1, 5, 2}, l.Values())
	assert.GreaterOrEqual(t, l.Capacity(), 3)
}

func TestArrayList_RemoveZeroesSlot(t *testing.T) {
	a, b, c := "a", "b", "c"
	l, err := OfArray(&a, &b, &c)
	require.NoError(t, err)

	_, err = l.Remove(0)
	require.NoError(t, err)

	// the vacated slot beyond size must not keep a reference
	tail := l.elements[:3]
	assert.Nil(t, tail[2])
	assert.Equal(t, 2, l.Size())
}

func TestArrayList_ClearResetsCapacity(t *testing.T) {
	l, err := NewArrayListWithCapacity[int](64)
	require.NoError(t, err)
	require.NoError(t, l.Add(1))

	l.Clear()
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, container.DefaultCapacity, l.Capacity())
}

func TestArrayList_ZeroValue(t *testing.T) {
	var l ArrayList[int]
	require.NoError(t, l.Add(1))
	require.NoError(t, l.Add(2))
	assert.Equal(t, []int{1, 2}, l.Values())
}
