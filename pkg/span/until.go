package span

import "fmt"

// Until is the span (-inf, stop).
type Until struct {
	stop int64
}

func (r Until) Stop() int64 { return r.stop }

func (r Until) IsEmpty() bool { return false }

func (r Until) NonEmpty() bool { return true }

func (r Until) Contains(pos int64) bool { return pos < r.stop }

func (r Until) ContainsSpan(o Span) bool {
	switch o := o.(type) {
	case Bounded:
		return o.stop <= r.stop
	case Until:
		return o.stop <= r.stop
	}
	return false
}

func (r Until) Overlaps(o Span) bool {
	return o.NonEmpty() && o.CompareStart(r.stop) < 0
}

func (r Until) Touches(o Span) bool {
	return o.CompareStart(r.stop) <= 0
}

func (r Until) CompareStart(pos int64) int { return -1 }

func (r Until) CompareStop(pos int64) int { return compare(r.stop, pos) }

func (r Until) Union(o Span) Span {
	switch o := o.(type) {
	case Bounded:
		return Until{stop: max(r.stop, o.stop)}
	case From:
		return All{}
	case Until:
		return Until{stop: max(r.stop, o.stop)}
	case All:
		return All{}
	case Void:
		return r
	}
	panic(unknownVariant(o))
}

func (r Until) Intersect(o Span) Span {
	switch o := o.(type) {
	case Bounded:
		return o.Intersect(r)
	case From:
		return o.Intersect(r)
	case Until:
		return Until{stop: min(r.stop, o.stop)}
	case All:
		return r
	case Void:
		return Void{}
	}
	panic(unknownVariant(o))
}

func (r Until) Subtract(o Span) []Span {
	return subtractPieces(r, o)
}

func (r Until) SubtractOpen(o Open) Span {
	return subtractOpen(r, o)
}

func (r Until) Shift(delta int64) Span {
	return Until{stop: r.stop + delta}
}

func (r Until) Clip(pos int64) int64 {
	return min(pos, r.stop)
}

// Invert returns the complement [stop, +inf).
func (r Until) Invert() Span {
	return From{start: r.stop}
}

func (r Until) String() string {
	return fmt.Sprintf("(-inf..%d)", r.stop)
}
