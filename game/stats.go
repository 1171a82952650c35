package game

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/cubefall/chamber"
)

// ClearCount is one bucket of the clear histogram: how many locks removed
// exactly Planes planes.
type ClearCount struct {
	Planes int
	Locks  int
}

// Stats accumulates per-game statistics from lock results.
type Stats struct {
	byKind *intmap.Map[chamber.Kind, int]
	clears *intmap.Map[int, int]
	pieces int
	planes int
	best   int
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		byKind: intmap.New[chamber.Kind, int](chamber.KindCount),
		clears: intmap.New[int, int](8),
	}
}

func (s *Stats) record(res chamber.LockResult) {
	n, _ := s.byKind.Get(res.Kind)
	s.byKind.Put(res.Kind, n+1)

	c, _ := s.clears.Get(res.Cleared)
	s.clears.Put(res.Cleared, c+1)

	s.pieces++
	s.planes += res.Cleared
	s.best = max(s.best, res.Cleared)
}

// Reset clears every counter.
func (s *Stats) Reset() {
	s.byKind.Clear()
	s.clears.Clear()
	s.pieces = 0
	s.planes = 0
	s.best = 0
}

// Pieces returns the number of pieces locked.
func (s *Stats) Pieces() int { return s.pieces }

// Planes returns the total number of planes cleared.
func (s *Stats) Planes() int { return s.planes }

// BestClear returns the most planes a single lock has cleared.
func (s *Stats) BestClear() int { return s.best }

// Locked returns how many pieces of kind k were locked.
func (s *Stats) Locked(k chamber.Kind) int {
	n, _ := s.byKind.Get(k)
	return n
}

// Clears returns the clear histogram ordered by plane count. Buckets with no
// locks are omitted.
func (s *Stats) Clears() []ClearCount {
	out := make([]ClearCount, 0, s.clears.Len())
	s.clears.ForEach(func(planes, locks int) bool {
		out = append(out, ClearCount{Planes: planes, Locks: locks})
		return true
	})
	slices.SortFunc(out, func(a, b ClearCount) int { return a.Planes - b.Planes })
	return out
}
