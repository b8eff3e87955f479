// Package host models the game side the repeater mutates: the player's
// identifier collections, the running scripted event, next-day mail and the
// lifecycle callbacks.
package host

import (
	"fmt"
	"strings"
)

// Collection is an ordered list owned by the host. Duplicates are allowed;
// the host does not enforce uniqueness.
type Collection[T comparable] struct {
	items []T
}

// NewCollection returns a collection holding a copy of items.
func NewCollection[T comparable](items ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...)}
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) At(i int) T { return c.items[i] }

// Values returns a copy of the entries in order.
func (c *Collection[T]) Values() []T {
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Contains(v T) bool {
	for _, item := range c.items {
		if item == v {
			return true
		}
	}
	return false
}

func (c *Collection[T]) Append(v T) {
	c.items = append(c.items, v)
}

// RemoveAt deletes the entry at index i, shifting later entries down.
func (c *Collection[T]) RemoveAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Remove deletes the first entry equal to v and reports whether one was found.
func (c *Collection[T]) Remove(v T) bool {
	for i, item := range c.items {
		if item == v {
			c.RemoveAt(i)
			return true
		}
	}
	return false
}

// Last returns the final entry, if any.
func (c *Collection[T]) Last() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// String joins the entries with ", ".
func (c *Collection[T]) String() string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ", ")
}
