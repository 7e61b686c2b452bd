package span

import "fmt"

// From is the span [start, +inf).
type From struct {
	start int64
}

func (r From) Start() int64 { return r.start }

func (r From) IsEmpty() bool { return false }

func (r From) NonEmpty() bool { return true }

func (r From) Contains(pos int64) bool { return pos >= r.start }

func (r From) ContainsSpan(o Span) bool {
	switch o := o.(type) {
	case Bounded:
		return o.start >= r.start
	case From:
		return o.start >= r.start
	}
	return false
}

func (r From) Overlaps(o Span) bool {
	return o.NonEmpty() && o.CompareStop(r.start) > 0
}

func (r From) Touches(o Span) bool {
	return o.CompareStop(r.start) >= 0
}

func (r From) CompareStart(pos int64) int { return compare(r.start, pos) }

func (r From) CompareStop(pos int64) int { return 1 }

func (r From) Union(o Span) Span {
	switch o := o.(type) {
	case Bounded:
		return From{start: min(r.start, o.start)}
	case From:
		return From{start: min(r.start, o.start)}
	case Until:
		return All{}
	case All:
		return All{}
	case Void:
		return r
	}
	panic(unknownVariant(o))
}

func (r From) Intersect(o Span) Span {
	switch o := o.(type) {
	case Bounded:
		return o.Intersect(r)
	case From:
		return From{start: max(r.start, o.start)}
	case Until:
		if r.start > o.stop {
			return Void{}
		}
		return Bounded{start: r.start, stop: o.stop}
	case All:
		return r
	case Void:
		return Void{}
	}
	panic(unknownVariant(o))
}

func (r From) Subtract(o Span) []Span {
	return subtractPieces(r, o)
}

func (r From) SubtractOpen(o Open) Span {
	return subtractOpen(r, o)
}

func (r From) Shift(delta int64) Span {
	return From{start: r.start + delta}
}

func (r From) Clip(pos int64) int64 {
	return max(pos, r.start)
}

// Invert returns the complement (-inf, start).
func (r From) Invert() Span {
	return Until{stop: r.start}
}

func (r From) String() string {
	return fmt.Sprintf("[%d..+inf)", r.start)
}
