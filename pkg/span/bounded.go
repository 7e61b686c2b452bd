package span

import "fmt"

// Bounded is the half-open span [start, stop) with start <= stop. A
// zero-length Bounded is empty but still marks a position on the line,
// unlike Void: its subtraction from a larger span cuts that span in two.
type Bounded struct {
	start int64
	stop  int64
}

func (r Bounded) Start() int64 { return r.start }

func (r Bounded) Stop() int64 { return r.stop }

// Length returns stop - start.
func (r Bounded) Length() int64 { return r.stop - r.start }

func (r Bounded) IsEmpty() bool { return r.start == r.stop }

func (r Bounded) NonEmpty() bool { return !r.IsEmpty() }

func (r Bounded) Contains(pos int64) bool {
	return pos >= r.start && pos < r.stop
}

func (r Bounded) ContainsSpan(o Span) bool {
	switch o := o.(type) {
	case Bounded:
		return r.start <= o.start && o.stop <= r.stop
	}
	return false
}

func (r Bounded) Overlaps(o Span) bool {
	return r.NonEmpty() && o.NonEmpty() &&
		o.CompareStart(r.stop) < 0 && o.CompareStop(r.start) > 0
}

func (r Bounded) Touches(o Span) bool {
	return o.CompareStart(r.stop) <= 0 && o.CompareStop(r.start) >= 0
}

func (r Bounded) CompareStart(pos int64) int { return compare(r.start, pos) }

func (r Bounded) CompareStop(pos int64) int { return compare(r.stop, pos) }

func (r Bounded) Union(o Span) Span {
	switch o := o.(type) {
	case Bounded:
		return Bounded{start: min(r.start, o.start), stop: max(r.stop, o.stop)}
	case From:
		return From{start: min(r.start, o.start)}
	case Until:
		return Until{stop: max(r.stop, o.stop)}
	case All:
		return All{}
	case Void:
		return r
	}
	panic(unknownVariant(o))
}

func (r Bounded) Intersect(o Span) Span {
	switch o := o.(type) {
	case Bounded:
		start := max(r.start, o.start)
		stop := min(r.stop, o.stop)
		if start > stop {
			return Void{}
		}
		return Bounded{start: start, stop: stop}
	case From:
		start := max(r.start, o.start)
		if start > r.stop {
			return Void{}
		}
		return Bounded{start: start, stop: r.stop}
	case Until:
		stop := min(r.stop, o.stop)
		if r.start > stop {
			return Void{}
		}
		return Bounded{start: r.start, stop: stop}
	case All:
		return r
	case Void:
		return Void{}
	}
	panic(unknownVariant(o))
}

func (r Bounded) Subtract(o Span) []Span {
	return subtractPieces(r, o)
}

func (r Bounded) SubtractOpen(o Open) Span {
	return subtractOpen(r, o)
}

func (r Bounded) Shift(delta int64) Span {
	return Bounded{start: r.start + delta, stop: r.stop + delta}
}

func (r Bounded) Clip(pos int64) int64 {
	return min(max(pos, r.start), r.stop)
}

func (r Bounded) String() string {
	return fmt.Sprintf("[%d..%d)", r.start, r.stop)
}
