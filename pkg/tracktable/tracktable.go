package tracktable

import (
	"fmt"

	"github.com/henderiw/span/pkg/span"
	"github.com/henderiw/span/pkg/timeline"
	"k8s.io/apimachinery/pkg/labels"
)

// TrackTable is a sequencer track: regions claim spans of ticks and carry a
// label set describing them.
type TrackTable interface {
	Get(pos int64) (labels.Set, error)
	Claim(s span.Bounded, d labels.Set) error
	ClaimSize(size int64, d labels.Set) (span.Bounded, error)
	Release(start int64) error
	Update(start int64, d labels.Set) error

	Count() int
	Has(pos int64) bool

	IsFree(s span.Bounded) bool
	FindFree(size int64) (span.Bounded, error)

	GetAll() timeline.Entries[labels.Set]
	GetByLabel(selector labels.Selector) timeline.Entries[labels.Set]
}

// countIn is the reserved lead-in region at the head of every track, one
// bar at 480 ticks per quarter.
var countIn = span.Must(0, 1920)

var initEntries = timeline.Entries[labels.Set]{
	timeline.NewEntry[labels.Set](countIn, map[string]string{"type": "count-in", "status": "reserved"}),
}

func New(length int64) (TrackTable, error) {
	t, err := timeline.New[labels.Set](
		span.Must(0, length),
		initEntries,
		func(s span.Bounded) error {
			if s.Overlaps(countIn) {
				return fmt.Errorf("span %s overlaps the count-in %s, cannot be claimed", s, countIn)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &trackTable{
		table:  t,
		length: length,
	}, nil
}

type trackTable struct {
	table  timeline.Timeline[labels.Set]
	length int64
}

func (r *trackTable) Get(pos int64) (labels.Set, error) {
	e, err := r.table.Get(pos)
	if err != nil {
		return nil, err
	}
	return e.Data(), nil
}

func (r *trackTable) Claim(s span.Bounded, d labels.Set) error {
	if !r.table.IsFree(s) {
		return fmt.Errorf("span %s is already claimed", s)
	}
	return r.table.Claim(s, d)
}

func (r *trackTable) ClaimSize(size int64, d labels.Set) (span.Bounded, error) {
	return r.table.ClaimSize(size, d)
}

func (r *trackTable) Release(start int64) error {
	return r.table.Release(start)
}

func (r *trackTable) Update(start int64, d labels.Set) error {
	return r.table.Update(start, d)
}

func (r *trackTable) Count() int {
	return r.table.Count()
}

func (r *trackTable) Has(pos int64) bool {
	return r.table.Has(pos)
}

func (r *trackTable) IsFree(s span.Bounded) bool {
	return r.table.IsFree(s)
}

func (r *trackTable) FindFree(size int64) (span.Bounded, error) {
	return r.table.FindFree(size)
}

func (r *trackTable) GetAll() timeline.Entries[labels.Set] {
	return r.table.GetAll()
}

func (r *trackTable) GetByLabel(selector labels.Selector) timeline.Entries[labels.Set] {
	entries := timeline.Entries[labels.Set]{}

	iter := r.table.Iterate()

	for iter.Next() {
		if selector.Matches(iter.Value().Data()) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}
