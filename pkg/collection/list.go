// Package collection provides a small immutable ordered list.
//
// Every operation that changes the contents returns a new List backed by a
// freshly allocated array, so a List can be shared freely between values
// derived from the same ancestor.
package collection

import "iter"

// List is an immutable ordered sequence. The zero value is an empty list.
type List[T any] struct {
	items []T
}

// Of builds a list holding a copy of items.
func Of[T any](items ...T) List[T] {
	if len(items) == 0 {
		return List[T]{}
	}
	return List[T]{items: append([]T(nil), items...)}
}

func (l List[T]) Len() int      { return len(l.items) }
func (l List[T]) IsEmpty() bool { return len(l.items) == 0 }

// At returns the i-th item. It panics when i is out of range, like a slice.
func (l List[T]) At(i int) T { return l.items[i] }

// All returns a copy of the items.
func (l List[T]) All() []T {
	if len(l.items) == 0 {
		return nil
	}
	return append([]T(nil), l.items...)
}

// Values iterates over the items in order.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range l.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Append returns a new list with items added at the end.
func (l List[T]) Append(items ...T) List[T] {
	if len(items) == 0 {
		return l
	}
	out := make([]T, 0, len(l.items)+len(items))
	out = append(out, l.items...)
	out = append(out, items...)
	return List[T]{items: out}
}

// Map returns a new list with fn applied to every item, order preserved.
func (l List[T]) Map(fn func(T) T) List[T] {
	if len(l.items) == 0 {
		return l
	}
	out := make([]T, len(l.items))
	for i, it := range l.items {
		out[i] = fn(it)
	}
	return List[T]{items: out}
}

// Filter returns a new list holding the items for which keep returns true.
func (l List[T]) Filter(keep func(T) bool) List[T] {
	out := make([]T, 0, len(l.items))
	for _, it := range l.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return List[T]{items: out}
}
