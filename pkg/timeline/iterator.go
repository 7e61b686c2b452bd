package timeline

import "github.com/henderiw/span/pkg/span"

// Iterator walks claimed entries in ascending span order.
type Iterator[T1 any] struct {
	current int
	keys    []int64
	table   map[int64]Entry[T1]
}

func (r *Iterator[T1]) Value() Entry[T1] {
	return r.table[r.keys[r.current]]
}

func (r *Iterator[T1]) Span() span.Bounded {
	return r.Value().Span()
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < len(r.keys)
}

// IsConsecutive reports whether the current entry starts exactly where the
// previous one stopped.
func (r *Iterator[T1]) IsConsecutive() bool {
	if r.current < 1 {
		return false
	}
	prev := r.table[r.keys[r.current-1]].Span()
	return prev.Stop() == r.Span().Start()
}
