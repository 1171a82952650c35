package game_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(kinds ...chamber.Kind) func() chamber.Source {
	return func() chamber.Source {
		return chamber.NewSequenceSource(kinds...)
	}
}

func newSession(t *testing.T, opts game.Options, kinds ...chamber.Kind) *game.Session {
	t.Helper()
	if opts.Length == 0 {
		opts.Length, opts.Width, opts.Height = 6, 6, 12
	}
	if len(kinds) > 0 {
		opts.Source = sequence(kinds...)
	}
	s, err := game.NewSession(opts)
	require.NoError(t, err)
	return s
}

func falling(t *testing.T, s *game.Session) chamber.Piece {
	t.Helper()
	p, ok := s.Chamber().Falling()
	require.True(t, ok, "no falling piece")
	return p
}

// activate lets gravity pull the fresh piece into the playable height.
func activate(t *testing.T, sched *game.Scheduler) {
	t.Helper()
	for range 3 {
		sched.Once(sched.Session().DropDelay().Seconds())
	}
	require.True(t, sched.Session().Chamber().PieceActive())
}

func TestNewSession(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := newSession(t, game.Options{})
		assert.Equal(t, game.DefaultDropDelay, s.DropDelay())
		assert.Equal(t, 1, s.Games())
		assert.False(t, s.Paused())
		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, 12, s.Chamber().Height())
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := game.NewSession(game.Options{Length: 6, Width: -1, Height: 12})
		assert.ErrorIs(t, err, chamber.ErrInvalidDimensions)
	})

	t.Run("seeded sessions agree", func(t *testing.T) {
		a := newSession(t, game.Options{Seed: 77})
		b := newSession(t, game.Options{Seed: 77})
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, falling(t, a), falling(t, b))
		assert.Equal(t, a.Chamber().Next(), b.Chamber().Next())
	})

	t.Run("logs session start", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		s := newSession(t, game.Options{Logger: log})
		assert.Contains(t, buf.String(), "session started")
		assert.Contains(t, buf.String(), s.ID().String())
	})
}

func TestHorizontalMoves(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindT)
	start := falling(t, s).Center()

	assert.True(t, s.Do(game.MoveLeft))
	assert.True(t, s.Do(game.MoveFront))
	assert.Equal(t, start.Add(chamber.Left).Add(chamber.Front), falling(t, s).Center())

	assert.True(t, s.Do(game.RotateZPlus))
	assert.True(t, s.Do(game.RotateZMinus))
	assert.Equal(t, start.Add(chamber.Left).Add(chamber.Front), falling(t, s).Center())
}

func TestVerticalMovesNeedCheat(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		s := newSession(t, game.Options{}, chamber.KindT)
		before := falling(t, s)
		assert.False(t, s.Do(game.MoveDown))
		assert.False(t, s.Do(game.MoveUp))
		assert.Equal(t, before, falling(t, s))
	})

	t.Run("allowed with cheat", func(t *testing.T) {
		s := newSession(t, game.Options{Cheats: game.Cheats{VerticalMoves: true}}, chamber.KindT)
		start := falling(t, s).Center()
		assert.True(t, s.Do(game.MoveDown))
		assert.True(t, s.Do(game.MoveDown))
		assert.True(t, s.Do(game.MoveUp))
		assert.Equal(t, start.Add(chamber.Down), falling(t, s).Center())
	})
}

func TestDropsNeedActivePiece(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindSquare, chamber.KindT)
	require.False(t, s.Chamber().PieceActive())

	assert.False(t, s.Do(game.SoftDrop))
	assert.False(t, s.Do(game.HardDrop))
	assert.Equal(t, s.Chamber().SpawnPoint(), falling(t, s).Center())
}

func TestSoftDrop(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindSquare, chamber.KindT)
	sched := game.NewGameScheduler(s)
	activate(t, sched)

	z := falling(t, s).Center().Z
	assert.True(t, s.Do(game.SoftDrop))
	assert.Equal(t, z-1, falling(t, s).Center().Z)

	for falling(t, s).Kind() == chamber.KindSquare {
		require.True(t, s.Do(game.SoftDrop))
	}
	assert.Equal(t, 1, s.Stats().Pieces())
	assert.Equal(t, 4, s.Chamber().Snapshot().PlaneFilled(0))
	assert.Equal(t, s.Chamber().SpawnPoint(), falling(t, s).Center())
}

func TestHardDrop(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindSquare, chamber.KindT, chamber.KindLine)
	sched := game.NewGameScheduler(s)
	activate(t, sched)

	assert.True(t, s.Do(game.HardDrop))

	assert.Equal(t, 1, s.Stats().Pieces())
	assert.Equal(t, 1, s.Stats().Locked(chamber.KindSquare))
	assert.Equal(t, 4, s.Chamber().Snapshot().PlaneFilled(0))
	assert.Equal(t, chamber.KindT, falling(t, s).Kind())
	assert.Equal(t, chamber.KindLine, s.Chamber().Next().Kind())
}

func TestLockIsDeferredToEndOfFrame(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindSquare, chamber.KindT)
	input := &game.InputSystem{}
	sched := game.NewScheduler(s)
	sched.Register(input)
	sched.Register(&game.GravitySystem{})
	activate(t, sched)

	s.Submit(game.HardDrop, game.MoveLeft, game.RotateXPlus)
	assert.Equal(t, 3, s.Pending())
	sched.Once(0)

	assert.Zero(t, s.Pending())
	assert.Equal(t, 1, input.Applied)
	assert.Equal(t, 2, input.Rejected, "intents after a lock request are ignored")
	assert.Equal(t, 4, s.Chamber().Snapshot().PlaneFilled(0), "square locked unmoved")
	assert.Equal(t, chamber.KindT, falling(t, s).Kind())

	s.Submit(game.MoveLeft)
	sched.Once(0)
	assert.Equal(t, 2, input.Applied)
}

func TestGravity(t *testing.T) {
	t.Run("drops once per delay", func(t *testing.T) {
		s := newSession(t, game.Options{DropDelay: 500 * time.Millisecond}, chamber.KindT)
		gravity := &game.GravitySystem{}
		sched := game.NewScheduler(s)
		sched.Register(gravity)
		z := falling(t, s).Center().Z

		sched.Once(0.3)
		assert.Equal(t, z, falling(t, s).Center().Z)

		sched.Once(0.3)
		assert.Equal(t, z-1, falling(t, s).Center().Z)
		assert.InDelta(t, 0.1, gravity.Elapsed, 1e-9)

		sched.Once(1.0)
		assert.Equal(t, z-3, falling(t, s).Center().Z)
		assert.Equal(t, 3, gravity.Drops)
	})

	t.Run("locks a grounded piece", func(t *testing.T) {
		s := newSession(t, game.Options{}, chamber.KindSquare, chamber.KindT)
		sched := game.NewGameScheduler(s)

		sched.Once(100)

		assert.Equal(t, 1, s.Stats().Pieces())
		assert.Equal(t, chamber.KindT, falling(t, s).Kind())
		assert.Equal(t, s.Chamber().SpawnPoint(), falling(t, s).Center())
	})

	t.Run("manual lock", func(t *testing.T) {
		s := newSession(t, game.Options{Cheats: game.Cheats{ManualLock: true}}, chamber.KindSquare, chamber.KindT)
		sched := game.NewGameScheduler(s)

		sched.Once(100)

		assert.Zero(t, s.Stats().Pieces())
		assert.Equal(t, 0, falling(t, s).Center().Z)
		assert.False(t, s.Do(game.SoftDrop))
		assert.Equal(t, chamber.KindSquare, falling(t, s).Kind())

		assert.True(t, s.Do(game.HardDrop))
		assert.Equal(t, 1, s.Stats().Pieces())
	})
}

func TestPause(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindT)
	gravity := &game.GravitySystem{}
	sched := game.NewScheduler(s)
	sched.Register(gravity)
	start := falling(t, s)

	s.Pause()
	assert.True(t, s.Paused())
	assert.False(t, s.Do(game.MoveLeft))
	sched.Once(10)
	assert.Equal(t, start, falling(t, s))
	assert.Zero(t, gravity.Elapsed)

	s.TogglePause()
	assert.False(t, s.Paused())
	assert.True(t, s.Do(game.MoveLeft))

	s.TogglePause()
	s.Unpause()
	assert.False(t, s.Paused())
}

func playUntilTopOut(t *testing.T, sched *game.Scheduler) {
	t.Helper()
	for i := 0; i < 50 && !sched.Session().Chamber().ToppedOut(); i++ {
		sched.Once(100)
	}
	require.True(t, sched.Session().Chamber().ToppedOut())
}

func TestTopOut(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindLine)
	sched := game.NewGameScheduler(s)

	playUntilTopOut(t, sched)

	// Flat lines stack one layer each; the thirteenth reaches the ceiling.
	assert.Equal(t, 13, s.Stats().Pieces())
	assert.Zero(t, s.Stats().Planes())
	_, ok := s.Chamber().Falling()
	assert.False(t, ok, "no piece is promoted after the game ends")

	for _, i := range []game.Intent{game.MoveLeft, game.RotateXPlus, game.SoftDrop, game.HardDrop} {
		assert.False(t, s.Do(i), "%s accepted after top-out", i)
	}
	sched.Once(100)
	assert.Equal(t, 13, s.Stats().Pieces())
}

func TestRestart(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindLine, chamber.KindT)
	id := s.ID()
	sched := game.NewGameScheduler(s)
	playUntilTopOut(t, sched)
	s.Pause()
	s.Submit(game.MoveLeft)

	s.Restart()

	assert.Equal(t, id, s.ID())
	assert.Equal(t, 2, s.Games())
	assert.False(t, s.Chamber().ToppedOut())
	assert.False(t, s.Paused())
	assert.Zero(t, s.Pending())
	assert.Zero(t, s.Stats().Pieces())
	assert.Zero(t, s.Chamber().Score())
	assert.Zero(t, s.Chamber().Snapshot().Filled())
	assert.Equal(t, chamber.KindLine, falling(t, s).Kind())
	assert.True(t, s.Do(game.MoveLeft))
}
