package chamber

import "math/rand/v2"

// Source picks the kind of each piece a Chamber spawns.
type Source interface {
	Next() Kind
}

// RandomSource draws every kind with equal probability. Repeats are allowed;
// there is no bag or history.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed. Equal seeds yield
// equal sequences.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a uniformly chosen kind.
func (s *RandomSource) Next() Kind {
	return Kind(s.rng.IntN(KindCount))
}

// SequenceSource replays a fixed list of kinds, wrapping around at the end.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource returns a SequenceSource over kinds. It panics when kinds
// is empty.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("chamber: sequence source needs at least one kind")
	}
	return &SequenceSource{kinds: append([]Kind(nil), kinds...)}
}

// Next returns the next kind in the sequence.
func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
