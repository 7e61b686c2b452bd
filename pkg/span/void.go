package span

// Void is the canonical empty span. It covers no position and, unlike a
// zero-length Bounded, holds no position either: subtracting Void never
// cuts.
type Void struct{}

func (r Void) IsEmpty() bool { return true }

func (r Void) NonEmpty() bool { return false }

func (r Void) Contains(pos int64) bool { return false }

func (r Void) ContainsSpan(o Span) bool { return false }

func (r Void) Overlaps(o Span) bool { return false }

func (r Void) Touches(o Span) bool { return false }

func (r Void) CompareStart(pos int64) int { return 1 }

func (r Void) CompareStop(pos int64) int { return -1 }

func (r Void) Union(o Span) Span { return o }

func (r Void) Intersect(o Span) Span { return Void{} }

func (r Void) Subtract(o Span) []Span {
	return subtractPieces(r, o)
}

func (r Void) SubtractOpen(o Open) Span {
	return subtractOpen(r, o)
}

func (r Void) Shift(delta int64) Span { return Void{} }

func (r Void) Clip(pos int64) int64 { return pos }

// Invert returns the complement, the entire line.
func (r Void) Invert() Span { return All{} }

func (r Void) String() string { return "(void)" }
