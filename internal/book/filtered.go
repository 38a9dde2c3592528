package book

// Source is anything that exposes an ordered list of items.
type Source[T any] interface {
	Items() []T
}

// FilteredList is a live view over a Source. The view is computed from the
// current source contents and predicate on every read, so it never goes
// stale when either changes.
type FilteredList[T any] struct {
	source    Source[T]
	predicate func(T) bool
}

// NewFilteredList returns a view showing every item of source.
func NewFilteredList[T any](source Source[T]) *FilteredList[T] {
	return &FilteredList[T]{source: source}
}

// SetPredicate replaces the active predicate. A nil predicate shows all items.
func (f *FilteredList[T]) SetPredicate(predicate func(T) bool) {
	f.predicate = predicate
}

// Items returns the items of the source that satisfy the predicate, in
// source order.
func (f *FilteredList[T]) Items() []T {
	all := f.source.Items()
	if f.predicate == nil {
		return all
	}
	out := make([]T, 0, len(all))
	for _, item := range all {
		if f.predicate(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of visible items.
func (f *FilteredList[T]) Len() int {
	return len(f.Items())
}

// Get returns the visible item at zero-based index i.
func (f *FilteredList[T]) Get(i int) (T, bool) {
	items := f.Items()
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return items[i], true
}
