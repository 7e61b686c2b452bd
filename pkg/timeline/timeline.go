package timeline

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/span/pkg/span"
	"github.com/henderiw/span/pkg/spanset"
)

// Timeline is a claim table over a bounded universe of positions: entries
// claim non-overlapping spans and carry a payload. Touching claims are
// allowed, overlapping ones are not.
type Timeline[T1 any] interface {
	Get(pos int64) (Entry[T1], error)
	Claim(s span.Bounded, d T1) error
	ClaimSize(size int64, d T1) (span.Bounded, error)
	Release(start int64) error
	Update(start int64, d T1) error

	Iterate() *Iterator[T1]

	Count() int
	Has(pos int64) bool

	IsFree(s span.Bounded) bool
	FindFree(size int64) (span.Bounded, error)

	GetAll() Entries[T1]
}

type ValidationFn func(s span.Bounded) error

func New[T1 any](universe span.Bounded, initEntries Entries[T1], v ValidationFn) (Timeline[T1], error) {
	r := &timeline[T1]{
		m:          new(sync.RWMutex),
		table:      map[int64]Entry[T1]{},
		universe:   universe,
		claimed:    spanset.New(),
		validateFn: v,
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.Span(), e.Data(), true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type timeline[T1 any] struct {
	m        *sync.RWMutex
	table    map[int64]Entry[T1] // keyed by span start
	starts   []int64             // sorted table keys
	universe span.Bounded
	// claimed mirrors the table coverage for gap queries.
	claimed    *spanset.Set
	validateFn ValidationFn
}

func (r *timeline[T1]) validate(s span.Bounded, init bool) error {
	if s.IsEmpty() {
		return fmt.Errorf("span %s is empty, cannot be claimed", s)
	}
	if !r.universe.ContainsSpan(s) {
		return fmt.Errorf("span %s is outside the timeline %s", s, r.universe)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *timeline[T1]) add(s span.Bounded, d T1, init bool) error {
	if err := r.validate(s, init); err != nil {
		return err
	}
	if r.claimed.Overlaps(s) {
		return fmt.Errorf("span %s overlaps an existing claim", s)
	}
	r.table[s.Start()] = NewEntry(s, d)
	i := sort.Search(len(r.starts), func(i int) bool { return r.starts[i] >= s.Start() })
	r.starts = append(r.starts, 0)
	copy(r.starts[i+1:], r.starts[i:])
	r.starts[i] = s.Start()
	r.claimed.Insert(s)
	return nil
}

func (r *timeline[T1]) Get(pos int64) (Entry[T1], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	// claims are disjoint, so only the claim with the largest start at or
	// below pos can cover it
	i := sort.Search(len(r.starts), func(i int) bool { return r.starts[i] > pos })
	if i > 0 {
		if e := r.table[r.starts[i-1]]; e.Span().Contains(pos) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no claim found at position: %d", pos)
}

func (r *timeline[T1]) Claim(s span.Bounded, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(s, d, false)
}

func (r *timeline[T1]) ClaimSize(size int64, d T1) (span.Bounded, error) {
	r.m.Lock()
	defer r.m.Unlock()

	s, err := r.findFree(size)
	if err != nil {
		return span.Bounded{}, err
	}
	if err := r.add(s, d, false); err != nil {
		return span.Bounded{}, err
	}
	return s, nil
}

func (r *timeline[T1]) Release(start int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.table[start]
	if !ok {
		return fmt.Errorf("no claim starting at: %d", start)
	}
	delete(r.table, start)
	i := sort.Search(len(r.starts), func(i int) bool { return r.starts[i] >= start })
	r.starts = append(r.starts[:i], r.starts[i+1:]...)
	r.claimed.Delete(e.Span())
	return nil
}

func (r *timeline[T1]) Update(start int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.table[start]
	if !ok {
		return fmt.Errorf("no claim starting at: %d", start)
	}
	r.table[start] = NewEntry(e.Span(), d)
	return nil
}

func (r *timeline[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *timeline[T1]) iterate() *Iterator[T1] {
	keys := make([]int64, len(r.starts))
	copy(keys, r.starts)

	return &Iterator[T1]{current: -1, keys: keys, table: r.table}
}

func (r *timeline[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *timeline[T1]) Has(pos int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Contains(pos)
}

func (r *timeline[T1]) IsFree(s span.Bounded) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.universe.ContainsSpan(s) && !r.claimed.Overlaps(s)
}

func (r *timeline[T1]) FindFree(size int64) (span.Bounded, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree(size)
}

func (r *timeline[T1]) findFree(size int64) (span.Bounded, error) {
	if size <= 0 {
		return span.Bounded{}, fmt.Errorf("size %d is not a valid claim size", size)
	}
	for _, gap := range r.claimed.Gaps(r.universe) {
		if gap.Length() >= size {
			return span.Must(gap.Start(), gap.Start()+size), nil
		}
	}
	return span.Bounded{}, fmt.Errorf("no free span of size %d found", size)
}

func (r *timeline[T1]) GetAll() Entries[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(Entries[T1], 0, len(r.table))
	iter := r.iterate()
	for iter.Next() {
		entries = append(entries, iter.Value())
	}
	return entries
}
