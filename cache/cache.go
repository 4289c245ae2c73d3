package cache

// A Line is one storage slot of a set. Recency is the logical timestamp of
// the last access; 0 means the line has never been used.
type Line struct {
	Valid   bool
	Tag     uint64
	Recency uint64
}

// A Set is a fixed group of lines an address may be stored in. Slot order is
// stable and is used only to break recency ties deterministically.
type Set struct {
	Lines []Line
}

// AccessResult describes the outcome of a single cache access.
type AccessResult struct {
	// Hit indicates the accessed block was already resident.
	Hit bool

	// Evicted is true when a miss displaced a valid line rather than
	// filling never-used capacity.
	Evicted bool

	// EvictedTag is the tag of the displaced line. Only meaningful when
	// Evicted is true.
	EvictedTag uint64
}

// Cache models one set-associative cache. It owns the two-level line array,
// the replacement policy, and the run statistics. The full array is sized
// once from the geometry at construction and never reallocates during a run.
// A Cache is exclusively owned by a single replay session; access is
// strictly sequential.
type Cache struct {
	geometry Geometry
	sets     []Set
	victims  VictimFinder
	stats    statsCollector
}

// New creates a cache with all lines invalid and all counters zero.
func New(geometry Geometry) *Cache {
	c := &Cache{
		geometry: geometry,
		sets:     make([]Set, geometry.NumSets()),
		victims:  NewLRUVictimFinder(),
	}

	for i := range c.sets {
		c.sets[i].Lines = make([]Line, geometry.Assoc)
	}

	return c
}

// Geometry returns the cache geometry.
func (c *Cache) Geometry() Geometry {
	return c.geometry
}

// Stats returns a snapshot of the run statistics.
func (c *Cache) Stats() Statistics {
	return c.stats.stats
}

// ResetStats clears the counters without disturbing cache contents. The
// recency clock keeps running so that stamps stay monotone across the reset.
func (c *Cache) ResetStats() {
	c.stats.stats = Statistics{}
}

// Access models one memory access to addr and classifies it as a hit or a
// miss, updating the counters as a side effect. On a miss the accessed block
// is installed, displacing the replacement policy's victim.
func (c *Cache) Access(addr uint64) AccessResult {
	tag, setIndex, _ := c.geometry.Decode(addr)
	set := &c.sets[setIndex]

	// Only valid lines participate in matching. A tag left behind in an
	// invalid slot must never produce a hit, even if the bits coincide.
	for i := range set.Lines {
		line := &set.Lines[i]
		if line.Valid && line.Tag == tag {
			line.Recency = c.stats.advanceClock()
			c.stats.stats.Hits++

			return AccessResult{Hit: true}
		}
	}

	c.stats.stats.Misses++

	return c.fill(set, tag)
}

// fill installs tag into set, overwriting the victim chosen by the
// replacement policy. Displacing a valid line counts as an eviction;
// consuming never-used capacity does not.
func (c *Cache) fill(set *Set, tag uint64) AccessResult {
	result := AccessResult{}

	victim := &set.Lines[c.victims.FindVictim(set)]
	if victim.Valid {
		c.stats.stats.Evictions++
		result.Evicted = true
		result.EvictedTag = victim.Tag
	}

	victim.Valid = true
	victim.Tag = tag
	victim.Recency = c.stats.advanceClock()

	return result
}
