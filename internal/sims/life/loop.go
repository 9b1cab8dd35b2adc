package life

import "slices"

// Loop describes a detected repetition: the board on turn Repeat has the same
// live cells as it had on turn First.
type Loop struct {
	First  int
	Repeat int
}

// Period returns the cycle length in turns.
func (l Loop) Period() int { return l.Repeat - l.First }

// LoopDetector remembers every snapshot it has observed, bucketed by live
// cell count. History is never pruned, so memory grows with the number of
// distinct states a board passes through.
type LoopDetector struct {
	buckets map[int][]BoardState
	total   int
}

// NewLoopDetector returns an empty detector.
func NewLoopDetector() *LoopDetector {
	return &LoopDetector{buckets: make(map[int][]BoardState)}
}

// Find returns the earliest stored snapshot identical to s.
func (d *LoopDetector) Find(s BoardState) (BoardState, bool) {
	for _, seen := range d.buckets[s.LiveCount()] {
		if seen.IsIdentical(s) {
			return seen, true
		}
	}
	return BoardState{}, false
}

// Observe checks s against history. When an identical snapshot exists the
// loop is reported and s is not stored; otherwise s is archived.
func (d *LoopDetector) Observe(s BoardState) (Loop, bool) {
	if seen, ok := d.Find(s); ok {
		return Loop{First: seen.Turn(), Repeat: s.Turn()}, true
	}
	count := s.LiveCount()
	d.buckets[count] = append(d.buckets[count], s)
	d.total++
	return Loop{}, false
}

// Snapshots returns the number of stored snapshots.
func (d *LoopDetector) Snapshots() int { return d.total }

// Buckets returns the number of distinct live counts seen.
func (d *LoopDetector) Buckets() int { return len(d.buckets) }

// Bucket returns a copy of the snapshots stored for a live count, oldest first.
func (d *LoopDetector) Bucket(count int) []BoardState {
	return slices.Clone(d.buckets[count])
}
