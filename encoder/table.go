package encoder

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Table maps category values of one feature slot to their accumulators.
type Table interface {
	// Get returns the accumulator for category, creating an empty one on
	// first sighting.
	Get(category string) *Accumulator
	// Lookup returns the accumulator for category without creating it or
	// touching any eviction order.
	Lookup(category string) (*Accumulator, bool)
	// Len returns the number of accumulators currently held.
	Len() int
}

// TableFactory creates the table of a single feature slot.
type TableFactory func() (Table, error)

// MapTable returns an unbounded table. Categories are kept for the lifetime
// of the encoder.
func MapTable() (Table, error) {
	return mapTable{}, nil
}

type mapTable map[string]*Accumulator

func (t mapTable) Get(category string) *Accumulator {
	acc, ok := t[category]
	if !ok {
		acc = &Accumulator{}
		t[category] = acc
	}
	return acc
}

func (t mapTable) Lookup(category string) (*Accumulator, bool) {
	acc, ok := t[category]
	return acc, ok
}

func (t mapTable) Len() int {
	return len(t)
}

// LRUTable returns a factory for tables holding at most capacity categories.
// When full, the least recently seen category is dropped; if it shows up
// again it starts cold.
//
// capacity should be at least the number of distinct values a single list
// can hold. Otherwise entries of one list evict each other within the row and
// their updates are lost.
func LRUTable(capacity int) TableFactory {
	return func() (Table, error) {
		if capacity <= 0 {
			return nil, fmt.Errorf("%w: lru capacity %d", ErrInvalidParam, capacity)
		}
		cache, err := simplelru.NewLRU[string, *Accumulator](capacity, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
		}
		return &lruTable{cache: cache}, nil
	}
}

type lruTable struct {
	cache *simplelru.LRU[string, *Accumulator]
}

func (t *lruTable) Get(category string) *Accumulator {
	if acc, ok := t.cache.Get(category); ok {
		return acc
	}
	acc := &Accumulator{}
	t.cache.Add(category, acc)
	return acc
}

func (t *lruTable) Lookup(category string) (*Accumulator, bool) {
	return t.cache.Peek(category)
}

func (t *lruTable) Len() int {
	return t.cache.Len()
}

// HashedTable returns a factory for fixed-size tables that hash categories
// into buckets (the hashing trick). Categories sharing a bucket share their
// statistics.
func HashedTable(buckets int) TableFactory {
	return func() (Table, error) {
		if buckets <= 0 {
			return nil, fmt.Errorf("%w: bucket count %d", ErrInvalidParam, buckets)
		}
		return &hashedTable{
			accs: make([]Accumulator, buckets),
			used: make([]bool, buckets),
		}, nil
	}
}

type hashedTable struct {
	accs []Accumulator
	used []bool
	n    int
}

func (t *hashedTable) bucket(category string) int {
	return int(xxhash.Sum64String(category) % uint64(len(t.accs)))
}

func (t *hashedTable) Get(category string) *Accumulator {
	b := t.bucket(category)
	if !t.used[b] {
		t.used[b] = true
		t.n++
	}
	return &t.accs[b]
}

func (t *hashedTable) Lookup(category string) (*Accumulator, bool) {
	b := t.bucket(category)
	if !t.used[b] {
		return nil, false
	}
	return &t.accs[b], true
}

// Len returns the number of buckets in use.
func (t *hashedTable) Len() int {
	return t.n
}
