package book

import (
	"errors"
	"slices"
)

// Collection errors.
var (
	ErrDuplicate = errors.New("duplicate entry")
	ErrNotFound  = errors.New("entry not found")
)

// UniqueList is an ordered list in which no two members are identity-equal.
// Identity is decided by same; removal and replacement look members up with
// equal.
type UniqueList[T any] struct {
	items     []T
	same      func(a, b T) bool
	equal     func(a, b T) bool
	listeners []func()
}

// NewUniqueList returns an empty list using the given comparisons.
func NewUniqueList[T any](same, equal func(a, b T) bool) *UniqueList[T] {
	return &UniqueList[T]{same: same, equal: equal}
}

// OnChange registers fn to be called after every successful mutation.
func (l *UniqueList[T]) OnChange(fn func()) {
	l.listeners = append(l.listeners, fn)
}

func (l *UniqueList[T]) notify() {
	for _, fn := range l.listeners {
		fn()
	}
}

// Contains reports whether an identity-equal member exists.
func (l *UniqueList[T]) Contains(e T) bool {
	return slices.ContainsFunc(l.items, func(m T) bool { return l.same(m, e) })
}

// Add appends e. Returns ErrDuplicate if an identity-equal member exists.
func (l *UniqueList[T]) Add(e T) error {
	if l.Contains(e) {
		return ErrDuplicate
	}
	l.items = append(l.items, e)
	l.notify()
	return nil
}

// Set replaces target with edited, keeping target's position.
// Returns ErrNotFound if target is not a member, and ErrDuplicate if edited
// is identity-equal to a member other than target.
func (l *UniqueList[T]) Set(target, edited T) error {
	idx := l.indexOf(target)
	if idx < 0 {
		return ErrNotFound
	}
	for i, m := range l.items {
		if i != idx && l.same(m, edited) {
			return ErrDuplicate
		}
	}
	l.items[idx] = edited
	l.notify()
	return nil
}

// Remove deletes the member equal to e. Returns ErrNotFound if none exists.
func (l *UniqueList[T]) Remove(e T) error {
	idx := l.indexOf(e)
	if idx < 0 {
		return ErrNotFound
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	l.notify()
	return nil
}

// SetAll replaces the contents with items. Returns ErrDuplicate, leaving the
// list unchanged, if items contains identity-equal entries.
func (l *UniqueList[T]) SetAll(items []T) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if l.same(items[i], items[j]) {
				return ErrDuplicate
			}
		}
	}
	l.items = slices.Clone(items)
	l.notify()
	return nil
}

// Clear removes every member.
func (l *UniqueList[T]) Clear() {
	l.items = nil
	l.notify()
}

// Items returns a copy of the members in insertion order.
func (l *UniqueList[T]) Items() []T {
	return slices.Clone(l.items)
}

// Len returns the number of members.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// Equal reports whether both lists hold fully-equal members in the same order.
func (l *UniqueList[T]) Equal(o *UniqueList[T]) bool {
	return slices.EqualFunc(l.items, o.items, l.equal)
}

func (l *UniqueList[T]) indexOf(e T) int {
	return slices.IndexFunc(l.items, func(m T) bool { return l.equal(m, e) })
}
