package span

// All is the span covering the entire int64 line.
type All struct{}

func (r All) IsEmpty() bool { return false }

func (r All) NonEmpty() bool { return true }

func (r All) Contains(pos int64) bool { return true }

func (r All) ContainsSpan(o Span) bool {
	_, void := o.(Void)
	return !void
}

func (r All) Overlaps(o Span) bool {
	return o.NonEmpty()
}

func (r All) Touches(o Span) bool {
	_, void := o.(Void)
	return !void
}

func (r All) CompareStart(pos int64) int { return -1 }

func (r All) CompareStop(pos int64) int { return 1 }

func (r All) Union(o Span) Span { return All{} }

func (r All) Intersect(o Span) Span { return o }

func (r All) Subtract(o Span) []Span {
	return subtractPieces(r, o)
}

func (r All) SubtractOpen(o Open) Span {
	return subtractOpen(r, o)
}

func (r All) Shift(delta int64) Span { return All{} }

func (r All) Clip(pos int64) int64 { return pos }

// Invert returns the complement, the empty set.
func (r All) Invert() Span { return Void{} }

func (r All) String() string { return "(-inf..+inf)" }
