package game

import (
	"testing"

	"github.com/plus3/cubefall/chamber"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	s := NewStats()
	results := []chamber.LockResult{
		{Kind: chamber.KindLine, Cleared: 0},
		{Kind: chamber.KindLine, Cleared: 2, Points: 400},
		{Kind: chamber.KindT, Cleared: 0},
		{Kind: chamber.KindCorner, Cleared: 1, Points: 100},
		{Kind: chamber.KindT, Cleared: 0},
	}
	for _, r := range results {
		s.record(r)
	}

	assert.Equal(t, 5, s.Pieces())
	assert.Equal(t, 3, s.Planes())
	assert.Equal(t, 2, s.BestClear())
	assert.Equal(t, 2, s.Locked(chamber.KindLine))
	assert.Equal(t, 2, s.Locked(chamber.KindT))
	assert.Equal(t, 1, s.Locked(chamber.KindCorner))
	assert.Zero(t, s.Locked(chamber.KindSquare))
	assert.Equal(t, []ClearCount{
		{Planes: 0, Locks: 3},
		{Planes: 1, Locks: 1},
		{Planes: 2, Locks: 1},
	}, s.Clears())

	t.Run("reset", func(t *testing.T) {
		s.Reset()
		assert.Zero(t, s.Pieces())
		assert.Zero(t, s.Planes())
		assert.Zero(t, s.BestClear())
		assert.Zero(t, s.Locked(chamber.KindLine))
		assert.Empty(t, s.Clears())
	})
}
