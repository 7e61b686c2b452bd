package timeline

import "github.com/henderiw/span/pkg/span"

type Entry[T1 any] interface {
	Span() span.Bounded
	Data() T1
}

type entry[T1 any] struct {
	span span.Bounded
	data T1
}

type Entries[T1 any] []Entry[T1]

func (r entry[T1]) Span() span.Bounded { return r.span }
func (r entry[T1]) Data() T1           { return r.data }

func NewEntry[T1 any](s span.Bounded, d T1) Entry[T1] {
	return entry[T1]{
		span: s,
		data: d,
	}
}
