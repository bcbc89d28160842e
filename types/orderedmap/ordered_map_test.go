package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		val, ok := om.Get("two")
		assert.True(t, ok)
		assert.Equal(t, 2, val)

		val, ok = om.Get("three")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("a", 11)

		assert.Equal(t, []string{"a", "b"}, om.Keys())
		assert.Equal(t, []int{11, 2}, om.Values())
	})

	t.Run("delete head, middle and tail", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		for i, k := range []string{"a", "b", "c", "d"} {
			om.Set(k, i)
		}

		om.Delete("b")
		assert.Equal(t, []string{"a", "c", "d"}, om.Keys())
		om.Delete("a")
		assert.Equal(t, []string{"c", "d"}, om.Keys())
		om.Delete("d")
		assert.Equal(t, []string{"c"}, om.Keys())
		om.Delete("missing")
		assert.Equal(t, 1, om.Len())

		require.NotNil(t, om.Front())
		assert.Same(t, om.Front(), om.Back())
	})

	t.Run("iteration both ways", func(t *testing.T) {
		om := NewOrderedMap[int, string]()
		om.Set(3, "three")
		om.Set(1, "one")
		om.Set(2, "two")

		var forward []int
		for e := om.Front(); e != nil; e = e.Next() {
			forward = append(forward, e.Key)
		}
		assert.Equal(t, []int{3, 1, 2}, forward)

		var backward []string
		for e := om.Back(); e != nil; e = e.Prev() {
			backward = append(backward, e.Value)
		}
		assert.Equal(t, []string{"two", "one", "three"}, backward)
	})

	t.Run("empty map", func(t *testing.T) {
		om := NewOrderedMap[string, string]()
		assert.Nil(t, om.Front())
		assert.Nil(t, om.Back())
		assert.Empty(t, om.Keys())
		assert.False(t, om.Has("x"))
	})
}
