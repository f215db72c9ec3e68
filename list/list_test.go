package list

import (
	"math/rand"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/grpc-boot/container"
)

type factory struct {
	name string
	new  func() List[int]
	of   func(elements ...int) (List[int], error)
}

var factories = []factory{
	{
		name: "linked",
		new:  func() List[int] { return NewLinkedList[int]() },
		of: func(elements ...int) (List[int], error) {
			return OfLinked(elements...)
		},
	},
	{
		name: "array",
		new:  func() List[int] { return NewArrayList[int]() },
		of: func(elements ...int) (List[int], error) {
			return OfArray(elements...)
		},
	},
}

func forEach(t *testing.T, fn func(t *testing.T, f factory)) {
	for _, f := range factories {
		f := f
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()
			fn(t, f)
		})
	}
}

func TestAddAndGet(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		r := rand.New(rand.NewSource(3))
		l := f.new()
		values := make([]int, 40)
		for index := range values {
			values[index] = r.Int()
			require.NoError(t, l.Add(values[index]))
		}

		if l.Size() != len(values) {
			t.Fatalf("want %d, got %d", len(values), l.Size())
		}
		for index, want := range values {
			got, err := l.Get(index)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		assert.Equal(t, values, l.Values())
	})
}

func TestOfRoundTrip(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(4, 8, 15, 16, 23, 42)
		require.NoError(t, err)

		got := make([]int, 0, l.Size())
		for index := 0; index < l.Size(); index++ {
			value, err := l.Get(index)
			require.NoError(t, err)
			got = append(got, value)
		}
		assert.Equal(t, []int{4, 8, 15, 16, 23, 42}, got)
	})
}

func TestSetThenGet(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(1, 2, 3, 4, 5)
		require.NoError(t, err)

		for index := 0; index < l.Size(); index++ {
			require.NoError(t, l.Set(index, index*10))
			value, err := l.Get(index)
			require.NoError(t, err)
			assert.Equal(t, index*10, value)
		}
		assert.Equal(t, 5, l.Size())
	})
}

func TestInsert(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l := f.new()
		require.NoError(t, l.Insert(0, 2))
		require.NoError(t, l.Insert(0, 1))
		require.NoError(t, l.Insert(2, 4))
		require.NoError(t, l.Insert(2, 3))
		require.NoError(t, l.Insert(l.Size(), 5))
		require.NoError(t, l.Insert(1, 9))

		assert.Equal(t, []int{1, 9, 2, 3, 4, 5}, l.Values())

		last, err := l.Last()
		require.NoError(t, err)
		assert.Equal(t, 5, last)

		// appending after an insert at the end must go through the new tail
		require.NoError(t, l.Add(6))
		assert.Equal(t, []int{1, 9, 2, 3, 4, 5, 6}, l.Values())
	})
}

func TestInsertBoundariesMatchPrependAppend(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		viaInsert, err := f.of(2, 3)
		require.NoError(t, err)
		require.NoError(t, viaInsert.Insert(0, 1))
		require.NoError(t, viaInsert.Insert(viaInsert.Size(), 4))

		viaAdd, err := f.of(1, 2, 3)
		require.NoError(t, err)
		require.NoError(t, viaAdd.Add(4))

		assert.Equal(t, viaAdd.Values(), viaInsert.Values())
	})
}

func TestIndexOutOfBounds(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(1, 2, 3)
		require.NoError(t, err)

		for _, index := range []int{-1, 4} {
			require.ErrorIs(t, l.Insert(index, 0), container.ErrIndexOutOfBounds)
		}
		for _, index := range []int{-1, 3} {
			_, err = l.Get(index)
			require.ErrorIs(t, err, container.ErrIndexOutOfBounds)
			require.ErrorIs(t, l.Set(index, 0), container.ErrIndexOutOfBounds)
			_, err = l.Remove(index)
			require.ErrorIs(t, err, container.ErrIndexOutOfBounds)
		}

		assert.Equal(t, []int{1, 2, 3}, l.Values())

		empty := f.new()
		_, err = empty.Get(0)
		require.ErrorIs(t, err, container.ErrIndexOutOfBounds)
		_, err = empty.Remove(0)
		require.ErrorIs(t, err, container.ErrIndexOutOfBounds)
	})
}

func TestRemove(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(1, 2, 3, 4, 5)
		require.NoError(t, err)

		value, err := l.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, 1, value)

		value, err = l.Remove(l.Size() - 1)
		require.NoError(t, err)
		assert.Equal(t, 5, value)

		value, err = l.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, 3, value)

		assert.Equal(t, []int{2, 4}, l.Values())

		first, err := l.First()
		require.NoError(t, err)
		assert.Equal(t, 2, first)
		last, err := l.Last()
		require.NoError(t, err)
		assert.Equal(t, 4, last)

		require.NoError(t, l.Add(6))
		assert.Equal(t, []int{2, 4, 6}, l.Values())
	})
}

func TestRemoveLastRemainingEmpties(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(7)
		require.NoError(t, err)

		value, err := l.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, 7, value)
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.Size())

		_, err = l.First()
		require.ErrorIs(t, err, container.ErrNoSuchElement)
		_, err = l.Last()
		require.ErrorIs(t, err, container.ErrNoSuchElement)

		require.NoError(t, l.Add(8))
		assert.Equal(t, []int{8}, l.Values())
	})
}

func TestContainsAndClear(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(3, 1, 4)
		require.NoError(t, err)

		assert.True(t, l.Contains(4))
		assert.False(t, l.Contains(5))

		l.Clear()
		assert.True(t, l.IsEmpty())
		assert.False(t, l.Contains(4))
		assert.Empty(t, l.Values())

		require.NoError(t, l.Add(1))
		assert.Equal(t, []int{1}, l.Values())
	})
}

func TestRange(t *testing.T) {
	forEach(t, func(t *testing.T, f factory) {
		l, err := f.of(5, 6, 7, 8)
		require.NoError(t, err)

		var indexes []int
		l.Range(func(index int, value int) (handled bool) {
			indexes = append(indexes, index)
			return value == 7
		})
		assert.Equal(t, []int{0, 1, 2}, indexes)
	})
}

func TestNilElements(t *testing.T) {
	one := 1
	lists := map[string]List[*int]{
		"linked": NewLinkedList[*int](),
		"array":  NewArrayList[*int](),
	}

	for name, l := range lists {
		require.NoError(t, l.Add(&one), name)

		require.ErrorIs(t, l.Add(nil), container.ErrInvalidArgument, name)
		require.ErrorIs(t, l.Insert(0, nil), container.ErrInvalidArgument, name)
		require.ErrorIs(t, l.Set(0, nil), container.ErrInvalidArgument, name)
		// nil check runs before the index check
		require.ErrorIs(t, l.Insert(9, nil), container.ErrNilElement, name)

		assert.Equal(t, 1, l.Size(), name)
		value, err := l.Get(0)
		require.NoError(t, err, name)
		assert.Same(t, &one, value, name)
	}
}

func TestCodec(t *testing.T) {
	linked, err := OfLinked("a", "b", "c")
	require.NoError(t, err)
	array, err := OfArray("a", "b", "c")
	require.NoError(t, err)

	for _, l := range []List[string]{linked, array} {
		data, err := jsoniter.Marshal(l)
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b","c"]`, string(data))

		out, err := yaml.Marshal(l)
		require.NoError(t, err)
		assert.Equal(t, "- a\n- b\n- c\n", string(out))
	}

	decodedLinked := NewLinkedList[string]()
	require.NoError(t, jsoniter.Unmarshal([]byte(`["x","y"]`), decodedLinked))
	last, err := decodedLinked.Last()
	require.NoError(t, err)
	assert.Equal(t, "y", last)

	decodedArray := NewArrayList[string]()
	require.NoError(t, yaml.Unmarshal([]byte("- x\n- y\n"), decodedArray))
	assert.Equal(t, []string{"x", "y"}, decodedArray.Values())
}

func BenchmarkLinkedList_Add(b *testing.B) {
	l := NewLinkedList[int]()
	b.ResetTimer()
	for index := 0; index < b.N; index++ {
		_ = l.Add(index)
	}
}

func BenchmarkArrayList_Add(b *testing.B) {
	l := NewArrayList[int]()
	b.ResetTimer()
	for index := 0; index < b.N; index++ {
		_ = l.Add(index)
	}
}
