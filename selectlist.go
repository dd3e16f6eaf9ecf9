// Package selectlist provides a nonempty list with exactly one selected
// element. Operations return new values; a SelectList is never mutated in
// place and can never be empty.
package selectlist

import "slices"

// SelectList is a nonempty sequence of T with one distinguished element.
// The zero value is a valid single-element list holding the zero T.
type SelectList[T any] struct {
	before   []T
	selected T
	after    []T
}

// Segments holds the three parts of a SelectList. It is the exact inverse
// of FromLists: FromLists(s.Before, s.Selected, s.After) rebuilds the list.
type Segments[T any] struct {
	Before   []T
	Selected T
	After    []T
}

// FromLists builds a SelectList from the elements before the selection,
// the selected element, and the elements after it. Any combination is
// valid; the slices are cloned so later mutation of the arguments cannot
// be observed through the list.
func FromLists[T any](before []T, selected T, after []T) SelectList[T] {
	return SelectList[T]{
		before:   cloneSeg(before),
		selected: selected,
		after:    cloneSeg(after),
	}
}

// cloneSeg copies a segment, normalizing empty to nil so that equal lists
// compare deeply equal no matter how they were built.
func cloneSeg[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// Singleton builds a one-element SelectList with selected as its element.
func Singleton[T any](selected T) SelectList[T] {
	return SelectList[T]{selected: selected}
}

// Before returns the elements preceding the selection in original order.
func (l SelectList[T]) Before() []T {
	return cloneSeg(l.before)
}

// After returns the elements following the selection in original order.
func (l SelectList[T]) After() []T {
	return cloneSeg(l.after)
}

// Selected returns the selected element.
func (l SelectList[T]) Selected() T {
	return l.selected
}

// Segments returns all three parts of the list.
func (l SelectList[T]) Segments() Segments[T] {
	return Segments[T]{
		Before:   cloneSeg(l.before),
		Selected: l.selected,
		After:    cloneSeg(l.after),
	}
}

// ToList flattens the list to before ++ [selected] ++ after.
func (l SelectList[T]) ToList() []T {
	out := make([]T, 0, l.Len())
	out = append(out, l.before...)
	out = append(out, l.selected)
	return append(out, l.after...)
}

// Len returns the total number of elements, always at least 1.
func (l SelectList[T]) Len() int {
	return len(l.before) + 1 + len(l.after)
}

// Index returns the position of the selected element in ToList order.
func (l SelectList[T]) Index() int {
	return len(l.before)
}

// Append returns a new list with extra added after the last element.
// The selection does not move.
func (l SelectList[T]) Append(extra ...T) SelectList[T] {
	return SelectList[T]{
		before:   l.before,
		selected: l.selected,
		after:    slices.Concat(l.after, extra),
	}
}

// Prepend returns a new list with extra added before the first element.
// The selection does not move.
func (l SelectList[T]) Prepend(extra ...T) SelectList[T] {
	return SelectList[T]{
		before:   slices.Concat(extra, l.before),
		selected: l.selected,
		after:    l.after,
	}
}
