package spanset

import (
	"sort"
	"strings"

	"github.com/henderiw/span/pkg/span"
)

// Set is an ordered collection of disjoint, non-empty bounded spans.
// Touching spans are merged on insert, so members never share a boundary.
type Set struct {
	spans []span.Bounded
}

func New(spans ...span.Bounded) *Set {
	r := &Set{}
	for _, s := range spans {
		r.Insert(s)
	}
	return r
}

// Insert adds the coverage of b, merging it with any member it touches.
// Empty spans are ignored.
func (r *Set) Insert(b span.Bounded) {
	if b.IsEmpty() {
		return
	}
	i := sort.Search(len(r.spans), func(i int) bool {
		return r.spans[i].Start() > b.Start()
	})
	if i > 0 && r.spans[i-1].Touches(b) {
		i--
	}
	merged := b
	j := i
	for j < len(r.spans) && r.spans[j].Touches(merged) {
		merged = merged.Union(r.spans[j]).(span.Bounded)
		j++
	}

	out := make([]span.Bounded, 0, len(r.spans)-(j-i)+1)
	out = append(out, r.spans[:i]...)
	out = append(out, merged)
	out = append(out, r.spans[j:]...)
	r.spans = out
}

// Delete removes the coverage of b, splitting members where needed.
func (r *Set) Delete(b span.Bounded) {
	if b.IsEmpty() {
		return
	}
	var out []span.Bounded
	for _, s := range r.spans {
		if !s.Overlaps(b) {
			out = append(out, s)
			continue
		}
		for _, piece := range s.Subtract(b) {
			out = append(out, piece.(span.Bounded))
		}
	}
	r.spans = out
}

func (r *Set) Contains(pos int64) bool {
	i := sort.Search(len(r.spans), func(i int) bool {
		return r.spans[i].Start() > pos
	}) - 1
	return i >= 0 && r.spans[i].Contains(pos)
}

// ContainsSpan reports whether the full coverage of b is in the set. Empty
// spans are trivially contained.
func (r *Set) ContainsSpan(b span.Bounded) bool {
	if b.IsEmpty() {
		return true
	}
	i := sort.Search(len(r.spans), func(i int) bool {
		return r.spans[i].Start() > b.Start()
	}) - 1
	return i >= 0 && r.spans[i].ContainsSpan(b)
}

// Overlaps reports whether b overlaps any member of the set.
func (r *Set) Overlaps(b span.Bounded) bool {
	for _, s := range r.spans {
		if s.Overlaps(b) {
			return true
		}
		if s.CompareStart(b.Stop()) >= 0 {
			break
		}
	}
	return false
}

// Spans returns the members in ascending order.
func (r *Set) Spans() []span.Bounded {
	return append([]span.Bounded(nil), r.spans...)
}

func (r *Set) Count() int {
	return len(r.spans)
}

func (r *Set) IsEmpty() bool {
	return len(r.spans) == 0
}

// Gaps returns the uncovered spans inside within, in ascending order.
func (r *Set) Gaps(within span.Bounded) []span.Bounded {
	var gaps []span.Bounded
	cursor := within.Start()
	for _, s := range r.spans {
		if s.Start() >= within.Stop() {
			break
		}
		if s.Stop() <= cursor {
			continue
		}
		if s.Start() > cursor {
			gaps = append(gaps, span.Must(cursor, s.Start()))
		}
		cursor = max(cursor, s.Stop())
	}
	if cursor < within.Stop() {
		gaps = append(gaps, span.Must(cursor, within.Stop()))
	}
	return gaps
}

func (r *Set) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, s := range r.spans {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString("}")
	return sb.String()
}
