package cache

// Statistics holds the aggregate counters a simulation run produces.
type Statistics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// statsCollector owns the run counters together with the recency clock.
//
// The clock is a logical timestamp, not wall-clock time. It advances exactly
// once per modeled access: on a hit for the matched line, or on the line fill
// of a miss. Each stamp is strictly greater than every stamp issued before
// it, and because lines start with recency 0 while the first stamp is 1, a
// never-used line always carries the smallest recency in its set. Wrap-around
// at 2^64 accesses is not modeled.
type statsCollector struct {
	stats Statistics
	clock uint64
}

// advanceClock increments the recency clock and returns the new value.
func (s *statsCollector) advanceClock() uint64 {
	s.clock++
	return s.clock
}
