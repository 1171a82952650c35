package chamber

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// SafeMargin is the number of hidden layers stacked above the playable
// height. Pieces spawn inside it so a fresh piece never starts obstructed.
const SafeMargin = 4

// PointsPerPlane is the base score of a single cleared plane. A lock that
// clears k planes scores PointsPerPlane * k * k.
const PointsPerPlane = 100

// ErrInvalidDimensions is returned by New when a dimension is not positive.
var ErrInvalidDimensions = errors.New("chamber: dimensions must be positive")

// Option configures a Chamber at construction.
type Option func(*Chamber)

// WithSource makes the chamber draw piece kinds from src.
func WithSource(src Source) Option {
	return func(c *Chamber) {
		c.source = src
	}
}

// WithSeed makes the chamber draw piece kinds from a RandomSource seeded with
// seed.
func WithSeed(seed uint64) Option {
	return func(c *Chamber) {
		c.source = NewRandomSource(seed)
	}
}

// WithLogger sets the logger lock and top-out events are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(c *Chamber) {
		if log != nil {
			c.log = log
		}
	}
}

// LockResult describes the outcome of a single Lock.
type LockResult struct {
	Kind      Kind
	Cleared   int
	Points    int64
	ToppedOut bool
}

// Chamber is the simulation: the voxel grid, the falling piece, the lookahead
// piece, the score and the top-out latch. Every mutation goes through its
// methods. A Chamber is not safe for concurrent use.
type Chamber struct {
	length int
	width  int
	// height includes SafeMargin.
	height int
	cells  []Color

	falling *Piece
	next    Piece
	spawn   Vector3i
	source  Source

	score     int64
	toppedOut bool

	log *slog.Logger
}

// New returns a chamber with the given playable dimensions, a falling piece
// at the spawn point and a lookahead piece already drawn.
func New(length, width, height int, opts ...Option) (*Chamber, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimensions, length, width, height)
	}

	c := &Chamber{
		length: length,
		width:  width,
		height: height + SafeMargin,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		c.source = NewRandomSource(rand.Uint64())
	}

	c.cells = make([]Color, c.length*c.width*c.height)
	c.spawn = Vector3i{length / 2, width / 2, c.height - 2}

	first := c.draw()
	c.falling = &first
	c.next = c.draw()
	return c, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(length, width, height int, opts ...Option) *Chamber {
	c, err := New(length, width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Length returns the playable extent along X.
func (c *Chamber) Length() int { return c.length }

// Width returns the playable extent along Y.
func (c *Chamber) Width() int { return c.width }

// Height returns the playable extent along Z, excluding SafeMargin.
func (c *Chamber) Height() int { return c.height - SafeMargin }

// Score returns the accumulated score.
func (c *Chamber) Score() int64 { return c.score }

// ToppedOut reports whether locked blocks have reached the ceiling. Once
// true it stays true for the life of the chamber.
func (c *Chamber) ToppedOut() bool { return c.toppedOut }

// SpawnPoint returns the cell every new piece is centered on.
func (c *Chamber) SpawnPoint() Vector3i { return c.spawn }

// Falling returns the active piece, if any.
func (c *Chamber) Falling() (Piece, bool) {
	if c.falling == nil {
		return Piece{}, false
	}
	return *c.falling, true
}

// Next returns the lookahead piece.
func (c *Chamber) Next() Piece { return c.next }

// Move shifts the falling piece one cell along axis. It reports false, and
// leaves the piece untouched, when the result would leave the grid or
// overlap a locked block.
func (c *Chamber) Move(axis Axis, sign Sign) bool {
	return c.attempt(func(p Piece) Piece { return p.Translate(axis, sign) })
}

// Rotate turns the falling piece a quarter about axis through its center,
// with the same all-or-nothing contract as Move.
func (c *Chamber) Rotate(axis Axis, sign Sign) bool {
	return c.attempt(func(p Piece) Piece { return p.Rotate(axis, sign) })
}

// CanMove reports whether Move(axis, sign) would succeed.
func (c *Chamber) CanMove(axis Axis, sign Sign) bool {
	if c.falling == nil {
		return false
	}
	return c.fits(c.falling.Translate(axis, sign))
}

// CanRotate reports whether Rotate(axis, sign) would succeed.
func (c *Chamber) CanRotate(axis Axis, sign Sign) bool {
	if c.falling == nil {
		return false
	}
	return c.fits(c.falling.Rotate(axis, sign))
}

func (c *Chamber) attempt(transform func(Piece) Piece) bool {
	if c.falling == nil {
		return false
	}
	moved := transform(*c.falling)
	if !c.fits(moved) {
		return false
	}
	*c.falling = moved
	return true
}

// fits reports whether every block of p is inside the grid, margin included,
// and over an empty cell.
func (c *Chamber) fits(p Piece) bool {
	for _, b := range p.Blocks() {
		if !b.InBounds(c.length, c.width, c.height) {
			return false
		}
		if c.cells[c.index(b.X, b.Y, b.Z)] != Nothing {
			return false
		}
	}
	return true
}

// PieceActive reports whether a falling piece exists and at least one of its
// blocks has entered the playable height.
func (c *Chamber) PieceActive() bool {
	if c.falling == nil {
		return false
	}
	for _, b := range c.falling.Blocks() {
		if b.Z < c.Height() {
			return true
		}
	}
	return false
}

// Lock writes the falling piece into the grid, clears full planes, scores
// them and latches top-out. Blocks outside the grid are skipped. The chamber
// has no falling piece afterwards until NextPiece is called.
func (c *Chamber) Lock() LockResult {
	if c.falling == nil {
		return LockResult{ToppedOut: c.toppedOut}
	}

	p := *c.falling
	color := p.Color()
	for _, b := range p.Blocks() {
		if !b.InBounds(c.length, c.width, c.height) {
			continue
		}
		c.cells[c.index(b.X, b.Y, b.Z)] = color
	}
	c.falling = nil

	cleared := c.clearPlanes()
	points := int64(PointsPerPlane * cleared * cleared)
	c.score += points
	c.checkTopOut()

	c.log.Debug("piece locked",
		"kind", p.Kind(),
		"center", p.Center(),
		"cleared", cleared,
		"score", c.score)

	return LockResult{
		Kind:      p.Kind(),
		Cleared:   cleared,
		Points:    points,
		ToppedOut: c.toppedOut,
	}
}

// NextPiece promotes the lookahead piece to falling and draws a new lookahead.
func (c *Chamber) NextPiece() {
	promoted := c.next
	c.falling = &promoted
	c.next = c.draw()
}

func (c *Chamber) draw() Piece {
	return NewPiece(c.source.Next(), c.spawn)
}

// clearPlanes removes every full horizontal plane from the ceiling down,
// collapsing everything above each one by a layer. The topmost margin layer
// is left as it was. It returns the number of planes removed.
func (c *Chamber) clearPlanes() int {
	cleared := 0
	for z := c.Height(); z >= 0; z-- {
		if !c.planeFull(z) {
			continue
		}
		cleared++
		for above := z + 1; above < c.height; above++ {
			c.lowerPlane(above)
		}
	}
	return cleared
}

func (c *Chamber) planeFull(z int) bool {
	for x := 0; x < c.length; x++ {
		for y := 0; y < c.width; y++ {
			if c.cells[c.index(x, y, z)] == Nothing {
				return false
			}
		}
	}
	return true
}

// lowerPlane copies plane z over plane z-1.
func (c *Chamber) lowerPlane(z int) {
	for x := 0; x < c.length; x++ {
		for y := 0; y < c.width; y++ {
			c.cells[c.index(x, y, z-1)] = c.cells[c.index(x, y, z)]
		}
	}
}

// checkTopOut latches toppedOut when anything occupies the first layer above
// the playable height.
func (c *Chamber) checkTopOut() {
	if c.toppedOut {
		return
	}
	ceiling := c.Height()
	for x := 0; x < c.length; x++ {
		for y := 0; y < c.width; y++ {
			if c.cells[c.index(x, y, ceiling)] != Nothing {
				c.toppedOut = true
				c.log.Info("topped out", "score", c.score)
				return
			}
		}
	}
}

func (c *Chamber) index(x, y, z int) int {
	return (x*c.width+y)*c.height + z
}
