package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionRemoveFirstOccurrence(t *testing.T) {
	c := NewCollection(1, 2, 1, 3)

	assert.True(t, c.Remove(1))
	assert.Equal(t, []int{2, 1, 3}, c.Values())

	assert.False(t, c.Remove(42))
	assert.Equal(t, 3, c.Len())
}

func TestCollectionRemoveAt(t *testing.T) {
	c := NewCollection("a", "b", "c")
	c.RemoveAt(1)
	assert.Equal(t, []string{"a", "c"}, c.Values())
	c.RemoveAt(1)
	assert.Equal(t, []string{"a"}, c.Values())
}

func TestCollectionLast(t *testing.T) {
	c := NewCollection[int]()
	_, ok := c.Last()
	assert.False(t, ok)

	c.Append(7)
	c.Append(9)
	v, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestCollectionValuesIsCopy(t *testing.T) {
	src := []int{1, 2}
	c := NewCollection(src...)
	src[0] = 99

	vals := c.Values()
	vals[1] = 100
	assert.Equal(t, []int{1, 2}, c.Values())
}

func TestCollectionString(t *testing.T) {
	assert.Equal(t, "", NewCollection[int]().String())
	assert.Equal(t, "4, 5, 6", NewCollection(4, 5, 6).String())
}
