package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/cubefall/chamber"
)

// DefaultDropDelay is how often gravity pulls the falling piece down a layer.
const DefaultDropDelay = time.Second

// Cheats relax the rules of a session.
type Cheats struct {
	// VerticalMoves allows MoveUp and MoveDown intents.
	VerticalMoves bool
	// ManualLock stops soft drops and gravity from locking a grounded piece;
	// only HardDrop locks.
	ManualLock bool
}

// Options configures a Session.
type Options struct {
	Length, Width, Height int

	// Seed fixes the piece sequence of every game in the session. Zero picks
	// a fresh random sequence per game.
	Seed uint64
	// Source, when set, supplies the piece source of each new game and takes
	// precedence over Seed.
	Source func() chamber.Source

	DropDelay time.Duration
	Cheats    Cheats

	Logger  *slog.Logger
	Metrics *Metrics
}

// Session is one player's run of games on a chamber. It queues intents,
// applies the driver rules on top of the chamber, and keeps statistics.
// A Session is not safe for concurrent use; drivers own it from a single
// goroutine.
type Session struct {
	id      uuid.UUID
	opts    Options
	log     *slog.Logger
	metrics *Metrics

	chamber *chamber.Chamber
	stats   *Stats
	games   int

	queue    []Intent
	paused   bool
	settling bool
}

// NewSession validates opts and starts the first game.
func NewSession(opts Options) (*Session, error) {
	if opts.DropDelay <= 0 {
		opts.DropDelay = DefaultDropDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		id:      uuid.New(),
		opts:    opts,
		metrics: opts.Metrics,
		stats:   NewStats(),
	}
	s.log = opts.Logger.With("session", s.id.String())

	c, err := s.newChamber()
	if err != nil {
		return nil, fmt.Errorf("game: new session: %w", err)
	}
	s.chamber = c
	s.games = 1
	s.metrics.reset(s.id.String())

	s.log.Info("session started",
		"length", c.Length(),
		"width", c.Width(),
		"height", c.Height(),
		"drop_delay", opts.DropDelay)
	return s, nil
}

func (s *Session) newChamber() (*chamber.Chamber, error) {
	opts := []chamber.Option{chamber.WithLogger(s.log)}
	switch {
	case s.opts.Source != nil:
		opts = append(opts, chamber.WithSource(s.opts.Source()))
	case s.opts.Seed != 0:
		opts = append(opts, chamber.WithSeed(s.opts.Seed))
	}
	return chamber.New(s.opts.Length, s.opts.Width, s.opts.Height, opts...)
}

// ID identifies the session in logs and reports.
func (s *Session) ID() uuid.UUID { return s.id }

// Chamber returns the current game. Callers must only read from it; all
// changes go through Submit or Do.
func (s *Session) Chamber() *chamber.Chamber { return s.chamber }

// Stats returns the statistics of the current game.
func (s *Session) Stats() *Stats { return s.stats }

// Games returns how many games the session has started, the current one
// included.
func (s *Session) Games() int { return s.games }

// DropDelay returns the gravity interval.
func (s *Session) DropDelay() time.Duration { return s.opts.DropDelay }

// Cheats returns the rule relaxations in effect.
func (s *Session) Cheats() Cheats { return s.opts.Cheats }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Pause stops gravity and rejects intents until Unpause.
func (s *Session) Pause() { s.setPaused(true) }

// Unpause resumes a paused session.
func (s *Session) Unpause() { s.setPaused(false) }

// TogglePause flips the pause state.
func (s *Session) TogglePause() { s.setPaused(!s.paused) }

func (s *Session) setPaused(p bool) {
	if s.paused == p {
		return
	}
	s.paused = p
	s.log.Debug("pause changed", "paused", p)
}

// Submit queues intents for the next frame.
func (s *Session) Submit(intents ...Intent) {
	s.queue = append(s.queue, intents...)
}

// Pending returns the number of queued intents.
func (s *Session) Pending() int { return len(s.queue) }

func (s *Session) drain() []Intent {
	q := s.queue
	s.queue = nil
	return q
}

// Do applies a single intent immediately, outside of any frame, and reports
// whether it changed the game.
func (s *Session) Do(i Intent) bool {
	cmds := newCommands()
	ok := s.apply(i, cmds)
	cmds.Flush(s)
	return ok
}

// Restart discards the current game and starts a new one with the same
// options. Statistics are reset; the session ID is kept.
func (s *Session) Restart() {
	c, err := s.newChamber()
	if err != nil {
		// Dimensions were validated when the session was created.
		panic(err)
	}
	s.chamber = c
	s.stats.Reset()
	s.games++
	s.queue = nil
	s.paused = false
	s.settling = false
	s.metrics.reset(s.id.String())
	s.log.Info("game restarted", "game", s.games)
}

// accepting reports whether intents may act on the chamber right now.
func (s *Session) accepting() bool {
	return !s.paused && !s.settling && !s.chamber.ToppedOut()
}

func (s *Session) apply(i Intent, cmds *Commands) bool {
	if !s.accepting() {
		return false
	}

	switch {
	case i.IsMove():
		if i.IsVertical() && !s.opts.Cheats.VerticalMoves {
			return false
		}
		return s.chamber.Move(i.Axis(), i.Sign())
	case i.IsRotate():
		return s.chamber.Rotate(i.Axis(), i.Sign())
	case i == SoftDrop:
		if !s.chamber.PieceActive() {
			return false
		}
		return s.drop(cmds)
	case i == HardDrop:
		if !s.chamber.PieceActive() {
			return false
		}
		for s.chamber.Move(chamber.AxisZ, chamber.Minus) {
		}
		s.scheduleLock(cmds)
		return true
	}
	return false
}

// gravity is the timed soft drop. Unlike a player's soft drop it also acts
// while the piece is still in the margin.
func (s *Session) gravity(cmds *Commands) bool {
	if !s.accepting() {
		return false
	}
	return s.drop(cmds)
}

func (s *Session) drop(cmds *Commands) bool {
	if s.chamber.Move(chamber.AxisZ, chamber.Minus) {
		return true
	}
	if s.opts.Cheats.ManualLock {
		return false
	}
	s.scheduleLock(cmds)
	return true
}

func (s *Session) scheduleLock(cmds *Commands) {
	s.settling = true
	cmds.Lock()
}

// lock settles the falling piece and, unless the game is over, promotes the
// next one.
func (s *Session) lock() {
	s.settling = false
	if _, ok := s.chamber.Falling(); !ok {
		return
	}

	res := s.chamber.Lock()
	s.stats.record(res)
	s.metrics.observe(s.id.String(), res, s.chamber.Score())

	if res.Cleared > 0 {
		s.log.Debug("planes cleared", "planes", res.Cleared, "points", res.Points)
	}
	if res.ToppedOut {
		s.log.Info("game over",
			"game", s.games,
			"score", s.chamber.Score(),
			"pieces", s.stats.Pieces(),
			"planes", s.stats.Planes())
		return
	}
	s.chamber.NextPiece()
}
