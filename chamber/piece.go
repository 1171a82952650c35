package chamber

// Color identifies what occupies a grid cell. Nothing marks an empty cell.
type Color uint8

const (
	Nothing Color = iota
	Red
	Orange
	Yellow
	Green
	Cyan
	Blue
	Purple
	Pink
	White
)

// Kind is one of the eight piece variants.
type Kind uint8

//go:generate go tool stringer -type=Kind -trimprefix=Kind

const (
	KindLine Kind = iota
	KindL
	KindHookL
	KindHookR
	KindSquiggly
	KindSquare
	KindT
	KindCorner
)

// KindCount is the number of piece variants.
const KindCount = 8

// Kinds lists every variant in declaration order.
var Kinds = [KindCount]Kind{
	KindLine, KindL, KindHookL, KindHookR, KindSquiggly, KindSquare, KindT, KindCorner,
}

type shape struct {
	color   Color
	offsets [3]Vector3i
}

// shapes holds the spawn layout of each variant, indexed by Kind.
var shapes = [KindCount]shape{
	KindLine:     {Cyan, [3]Vector3i{{-1, 0, 0}, {1, 0, 0}, {2, 0, 0}}},
	KindL:        {Blue, [3]Vector3i{{-1, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
	KindHookL:    {Pink, [3]Vector3i{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}}},
	KindHookR:    {Purple, [3]Vector3i{{1, 1, 0}, {1, 0, 0}, {0, 0, 1}}},
	KindSquiggly: {Green, [3]Vector3i{{-1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
	KindSquare:   {Orange, [3]Vector3i{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
	KindT:        {Yellow, [3]Vector3i{{-1, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
	KindCorner:   {Red, [3]Vector3i{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
}

// Color returns the grid color every piece of kind k locks as.
func (k Kind) Color() Color {
	if k >= KindCount {
		return Nothing
	}
	return shapes[k].color
}

// Piece is an immutable four-block polycube: a center block plus three
// offsets relative to it. Transforms return a new Piece, so a rejected move
// is undone by keeping the old value.
type Piece struct {
	kind    Kind
	center  Vector3i
	offsets [3]Vector3i
	// plane is the axis normal to a Square's flat side. Unused by other kinds.
	plane Axis
}

// NewPiece returns a piece of kind k in its spawn layout, centered at at.
func NewPiece(k Kind, at Vector3i) Piece {
	if k >= KindCount {
		panic("chamber: unknown piece kind " + k.String())
	}
	return Piece{
		kind:    k,
		center:  at,
		offsets: shapes[k].offsets,
		plane:   AxisZ,
	}
}

// Kind returns the variant of the piece.
func (p Piece) Kind() Kind { return p.kind }

// Color returns the color the piece locks into the grid with.
func (p Piece) Color() Color { return shapes[p.kind].color }

// Center returns the anchor block.
func (p Piece) Center() Vector3i { return p.center }

// Offsets returns the positions of the other three blocks relative to Center.
func (p Piece) Offsets() [3]Vector3i { return p.offsets }

// Orientation returns the axis normal to the plane a Square lies flat in.
// Other kinds always report AxisZ.
func (p Piece) Orientation() Axis { return p.plane }

// Blocks returns the center followed by the three offset blocks.
func (p Piece) Blocks() [4]Vector3i {
	return [4]Vector3i{
		p.center,
		p.center.Add(p.offsets[0]),
		p.center.Add(p.offsets[1]),
		p.center.Add(p.offsets[2]),
	}
}

// Translate shifts the piece one cell along axis.
func (p Piece) Translate(axis Axis, sign Sign) Piece {
	p.center = p.center.Add(Unit(axis, sign))
	return p
}

// Rotate turns the offsets a quarter about axis, leaving the center fixed.
//
// A Square only turns out of the plane it lies in: rotating about its own
// normal is a no-op, any other rotation moves it into the plane normal to the
// remaining axis. The square therefore always stays a flat plate.
func (p Piece) Rotate(axis Axis, sign Sign) Piece {
	if p.kind == KindSquare {
		if axis == p.plane {
			return p
		}
		p.plane = 3 - axis - p.plane
	}
	for i, o := range p.offsets {
		p.offsets[i] = o.Rotate(axis, sign)
	}
	return p
}
