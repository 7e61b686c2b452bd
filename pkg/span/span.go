package span

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds is returned when a bounded span is constructed with
// start > stop.
var ErrInvalidBounds = errors.New("invalid span bounds")

// Span is a half-open interval [start, stop) on the int64 line, or one of
// its unbounded or degenerate forms: From (start-only), Until (stop-only),
// All (the entire line) and Void (the empty set). Spans are immutable
// values; two spans are equal iff they are the same variant with the same
// bounds.
type Span interface {
	// IsEmpty reports whether the span covers no position. Only Void and a
	// zero-length Bounded are empty.
	IsEmpty() bool
	NonEmpty() bool

	// Contains reports whether pos lies within the span. The stop bound is
	// exclusive.
	Contains(pos int64) bool
	// ContainsSpan reports whether every position of o lies within the span.
	ContainsSpan(o Span) bool
	// Overlaps reports whether the intersection with o is non-empty.
	Overlaps(o Span) bool
	// Touches reports whether the spans overlap or share a boundary
	// position. Void touches nothing.
	Touches(o Span) bool

	// CompareStart compares the span start against pos, treating an
	// unbounded start as -infinity. Void compares as +infinity since it has
	// no position at all.
	CompareStart(pos int64) int
	// CompareStop compares the span stop against pos, treating an unbounded
	// stop as +infinity and Void as -infinity.
	CompareStop(pos int64) int

	// Union returns the smallest span covering both spans.
	Union(o Span) Span
	// Intersect returns the overlapping region. Touching equal bounds yield
	// a zero-length Bounded rather than Void, so the cut position survives.
	Intersect(o Span) Span
	// Subtract removes the positions of o and returns the zero, one or two
	// remaining pieces, earliest first. A zero-length Bounded still cuts at
	// its position; subtracting Void is a no-op unless the span is itself
	// empty, in which case no pieces remain.
	Subtract(o Span) []Span
	// SubtractOpen removes a half-line or the whole line. Cutting away a
	// half-line can never split a span, so the result is a single span.
	SubtractOpen(o Open) Span

	// Shift moves every finite bound by delta. All and Void are unchanged.
	Shift(delta int64) Span
	// Clip clamps pos into the span. Unlike Contains the stop bound is a
	// valid clip target. All and Void return pos unchanged.
	Clip(pos int64) int64

	String() string
}

// HasStart is implemented by spans with a finite start bound.
type HasStart interface {
	Span
	Start() int64
}

// HasStop is implemented by spans with a finite stop bound.
type HasStop interface {
	Span
	Stop() int64
}

// Open is implemented by spans whose complement is again a single span.
type Open interface {
	Span
	Invert() Span
}

// New returns the half-open span [start, stop). It fails with
// ErrInvalidBounds when start > stop and never substitutes Void for a
// zero-length result.
func New(start, stop int64) (Bounded, error) {
	if start > stop {
		return Bounded{}, fmt.Errorf("%w: start %d > stop %d", ErrInvalidBounds, start, stop)
	}
	return Bounded{start: start, stop: stop}, nil
}

// Must is New for bounds known to be valid; it panics otherwise.
func Must(start, stop int64) Bounded {
	s, err := New(start, stop)
	if err != nil {
		panic(err)
	}
	return s
}

// NewFrom returns the span [start, +inf).
func NewFrom(start int64) From {
	return From{start: start}
}

// NewUntil returns the span (-inf, stop).
func NewUntil(stop int64) Until {
	return Until{stop: stop}
}

func compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func unknownVariant(o Span) string {
	return fmt.Sprintf("unknown span variant: %T", o)
}

// subtractPieces cuts o away from s: the left piece keeps everything before
// o's start, the right piece everything from o's stop on. Empty pieces are
// dropped.
func subtractPieces(s, o Span) []Span {
	if _, void := o.(Void); void {
		if s.IsEmpty() {
			return nil
		}
		return []Span{s}
	}
	if s.IsEmpty() {
		return nil
	}
	var pieces []Span
	if hs, ok := o.(HasStart); ok {
		if left := s.Intersect(Until{stop: hs.Start()}); left.NonEmpty() {
			pieces = append(pieces, left)
		}
	}
	if hs, ok := o.(HasStop); ok {
		if right := s.Intersect(From{start: hs.Stop()}); right.NonEmpty() {
			pieces = append(pieces, right)
		}
	}
	return pieces
}

func subtractOpen(s Span, o Open) Span {
	switch o := o.(type) {
	case From:
		return s.Intersect(Until{stop: o.start})
	case Until:
		return s.Intersect(From{start: o.stop})
	case All:
		return Void{}
	case Void:
		return s
	}
	panic(unknownVariant(o))
}
