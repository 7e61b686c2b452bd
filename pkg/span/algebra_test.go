package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// samples covers every variant, including degenerate bounds.
var samples = []Span{
	Must(0, 0),
	Must(0, 10),
	Must(-5, 5),
	Must(5, 9),
	NewFrom(3),
	NewFrom(-3),
	NewUntil(7),
	NewUntil(-7),
	All{},
	Void{},
}

func TestUnion(t *testing.T) {
	cases := map[string]struct {
		a        Span
		b        Span
		expected Span
	}{
		"BoundedBounded":    {a: Must(0, 10), b: Must(5, 20), expected: Must(0, 20)},
		"BoundedDisjoint":   {a: Must(0, 10), b: Must(20, 30), expected: Must(0, 30)},
		"BoundedFrom":       {a: Must(0, 10), b: NewFrom(5), expected: NewFrom(0)},
		"BoundedUntil":      {a: Must(0, 10), b: NewUntil(5), expected: NewUntil(10)},
		"FromFrom":          {a: NewFrom(3), b: NewFrom(7), expected: NewFrom(3)},
		"FromUntil":         {a: NewFrom(3), b: NewUntil(7), expected: All{}},
		"FromUntilDisjoint": {a: NewFrom(7), b: NewUntil(3), expected: All{}},
		"UntilUntil":        {a: NewUntil(3), b: NewUntil(7), expected: NewUntil(7)},
		"VoidIdentity":      {a: Must(0, 10), b: Void{}, expected: Must(0, 10)},
		"AllAbsorbing":      {a: Must(0, 10), b: All{}, expected: All{}},
		"VoidVoid":          {a: Void{}, b: Void{}, expected: Void{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Union(tc.b))
			assert.Equal(t, tc.expected, tc.b.Union(tc.a))
		})
	}
}

func TestIntersect(t *testing.T) {
	cases := map[string]struct {
		a        Span
		b        Span
		expected Span
	}{
		"BoundedBounded":  {a: Must(0, 10), b: Must(5, 20), expected: Must(5, 10)},
		"BoundedInside":   {a: Must(0, 10), b: Must(2, 8), expected: Must(2, 8)},
		"BoundedDisjoint": {a: Must(0, 10), b: Must(20, 30), expected: Void{}},
		"BoundedTouching": {a: Must(0, 10), b: Must(10, 30), expected: Must(10, 10)},
		"BoundedFrom":     {a: Must(0, 10), b: NewFrom(5), expected: Must(5, 10)},
		"BoundedUntil":    {a: Must(0, 10), b: NewUntil(5), expected: Must(0, 5)},
		"FromFrom":        {a: NewFrom(3), b: NewFrom(7), expected: NewFrom(7)},
		"FromUntil":       {a: NewFrom(3), b: NewUntil(7), expected: Must(3, 7)},
		"FromUntilTouch":  {a: NewFrom(5), b: NewUntil(5), expected: Must(5, 5)},
		"FromUntilApart":  {a: NewFrom(7), b: NewUntil(3), expected: Void{}},
		"UntilUntil":      {a: NewUntil(3), b: NewUntil(7), expected: NewUntil(3)},
		"AllIdentity":     {a: Must(0, 10), b: All{}, expected: Must(0, 10)},
		"VoidAbsorbing":   {a: Must(0, 10), b: Void{}, expected: Void{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersect(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersect(tc.a))
		})
	}
}

func TestCommutativity(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if got, want := a.Union(b), b.Union(a); got != want {
				t.Errorf("%s union %s = %s, reversed %s", a, b, got, want)
			}
			if got, want := a.Intersect(b), b.Intersect(a); got != want {
				t.Errorf("%s intersect %s = %s, reversed %s", a, b, got, want)
			}
			if got, want := a.Overlaps(b), b.Overlaps(a); got != want {
				t.Errorf("%s overlaps %s = %v, reversed %v", a, b, got, want)
			}
			if got, want := a.Touches(b), b.Touches(a); got != want {
				t.Errorf("%s touches %s = %v, reversed %v", a, b, got, want)
			}
		}
	}
}

func TestIdentityAbsorption(t *testing.T) {
	for _, a := range samples {
		if got := a.Union(Void{}); got != a {
			t.Errorf("%s union void = %s", a, got)
		}
		if got := a.Union(All{}); got != Span(All{}) {
			t.Errorf("%s union all = %s", a, got)
		}
		if got := a.Intersect(All{}); got != a {
			t.Errorf("%s intersect all = %s", a, got)
		}
		if got := a.Intersect(Void{}); got != Span(Void{}) {
			t.Errorf("%s intersect void = %s", a, got)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := map[string]struct {
		a        Span
		b        Span
		expected bool
	}{
		"BoundedBounded":  {a: Must(0, 10), b: Must(5, 20), expected: true},
		"BoundedTouching": {a: Must(0, 10), b: Must(10, 20), expected: false},
		"BoundedDisjoint": {a: Must(0, 10), b: Must(20, 30), expected: false},
		"BoundedEmpty":    {a: Must(0, 10), b: Must(5, 5), expected: false},
		"BoundedFrom":     {a: Must(0, 10), b: NewFrom(9), expected: true},
		"BoundedFromAt":   {a: Must(0, 10), b: NewFrom(10), expected: false},
		"FromUntil":       {a: NewFrom(3), b: NewUntil(7), expected: true},
		"FromUntilTouch":  {a: NewFrom(5), b: NewUntil(5), expected: false},
		"FromFrom":        {a: NewFrom(3), b: NewFrom(1 << 40), expected: true},
		"AllBounded":      {a: All{}, b: Must(0, 10), expected: true},
		"AllEmpty":        {a: All{}, b: Must(5, 5), expected: false},
		"AllAll":          {a: All{}, b: All{}, expected: true},
		"VoidAll":         {a: Void{}, b: All{}, expected: false},
		"VoidBounded":     {a: Void{}, b: Must(0, 10), expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a))
		})
	}
}

func TestTouches(t *testing.T) {
	cases := map[string]struct {
		a        Span
		b        Span
		expected bool
	}{
		"BoundedBounded":  {a: Must(0, 10), b: Must(5, 20), expected: true},
		"BoundedTouching": {a: Must(0, 10), b: Must(10, 20), expected: true},
		"BoundedDisjoint": {a: Must(0, 10), b: Must(20, 30), expected: false},
		"BoundedEmpty":    {a: Must(0, 10), b: Must(5, 5), expected: true},
		"EmptyAtStop":     {a: Must(0, 10), b: Must(10, 10), expected: true},
		"FromUntilTouch":  {a: NewFrom(5), b: NewUntil(5), expected: true},
		"FromUntilApart":  {a: NewFrom(7), b: NewUntil(3), expected: false},
		"AllBounded":      {a: All{}, b: Must(5, 5), expected: true},
		"VoidAll":         {a: Void{}, b: All{}, expected: false},
		"VoidVoid":        {a: Void{}, b: Void{}, expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Touches(tc.b))
			assert.Equal(t, tc.expected, tc.b.Touches(tc.a))
		})
	}
}

func TestContainsSpan(t *testing.T) {
	cases := map[string]struct {
		a        Span
		b        Span
		expected bool
	}{
		"BoundedInside":   {a: Must(0, 10), b: Must(2, 8), expected: true},
		"BoundedReversed": {a: Must(2, 8), b: Must(0, 10), expected: false},
		"BoundedSame":     {a: Must(0, 10), b: Must(0, 10), expected: true},
		"BoundedFrom":     {a: Must(0, 10), b: NewFrom(5), expected: false},
		"FromBounded":     {a: NewFrom(0), b: Must(2, 8), expected: true},
		"FromFrom":        {a: NewFrom(0), b: NewFrom(5), expected: true},
		"FromUntil":       {a: NewFrom(0), b: NewUntil(5), expected: false},
		"UntilBounded":    {a: NewUntil(10), b: Must(2, 8), expected: true},
		"UntilUntil":      {a: NewUntil(10), b: NewUntil(5), expected: true},
		"AllBounded":      {a: All{}, b: Must(2, 8), expected: true},
		"AllFrom":         {a: All{}, b: NewFrom(5), expected: true},
		"AllVoid":         {a: All{}, b: Void{}, expected: false},
		"BoundedAll":      {a: Must(0, 10), b: All{}, expected: false},
		"AllAll":          {a: All{}, b: All{}, expected: true},
		"VoidBounded":     {a: Void{}, b: Must(2, 8), expected: false},
		"BoundedVoid":     {a: Must(0, 10), b: Void{}, expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.ContainsSpan(tc.b))
		})
	}
}
