package cache

import "math"

// A VictimFinder decides which slot of a set a miss should overwrite.
type VictimFinder interface {
	FindVictim(set *Set) int
}

// LRUVictimFinder selects the slot with the strictly smallest recency stamp,
// breaking ties in favor of the earliest slot. Never-used slots keep their
// initial recency of 0, below every stamp the clock ever issues, so empty
// capacity is consumed before any valid line is displaced. There is
// deliberately no separate empty-slot scan: the counter outputs depend on
// this single minimum search.
type LRUVictimFinder struct{}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	return &LRUVictimFinder{}
}

// FindVictim returns the index of the least recently used slot in the set.
func (f *LRUVictimFinder) FindVictim(set *Set) int {
	victim := 0
	oldest := uint64(math.MaxUint64)

	for i, line := range set.Lines {
		if line.Recency < oldest {
			victim = i
			oldest = line.Recency
		}
	}

	return victim
}
