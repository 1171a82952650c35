package chamber

import "fmt"

// Vector3i is an integer point in chamber space. It doubles as a displacement.
// X and Y span the footprint, Z is height.
type Vector3i struct {
	X, Y, Z int
}

// Unit displacements along each axis.
var (
	Left  = Vector3i{-1, 0, 0}
	Right = Vector3i{1, 0, 0}
	Back  = Vector3i{0, -1, 0}
	Front = Vector3i{0, 1, 0}
	Down  = Vector3i{0, 0, -1}
	Up    = Vector3i{0, 0, 1}
)

// Add returns v+o.
func (v Vector3i) Add(o Vector3i) Vector3i {
	return Vector3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3i) Sub(o Vector3i) Vector3i {
	return Vector3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// InBounds reports whether 0 <= coordinate < bound on every axis.
func (v Vector3i) InBounds(length, width, height int) bool {
	return 0 <= v.X && v.X < length &&
		0 <= v.Y && v.Y < width &&
		0 <= v.Z && v.Z < height
}

// DistSq returns the squared euclidean distance between v and o.
func (v Vector3i) DistSq(o Vector3i) int {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Rotate turns v a quarter about axis through the origin, right-handed.
func (v Vector3i) Rotate(axis Axis, sign Sign) Vector3i {
	switch axis {
	case AxisX:
		if sign == Plus {
			return Vector3i{v.X, -v.Z, v.Y}
		}
		return Vector3i{v.X, v.Z, -v.Y}
	case AxisY:
		if sign == Plus {
			return Vector3i{v.Z, v.Y, -v.X}
		}
		return Vector3i{-v.Z, v.Y, v.X}
	case AxisZ:
		if sign == Plus {
			return Vector3i{-v.Y, v.X, v.Z}
		}
		return Vector3i{v.Y, -v.X, v.Z}
	}
	return v
}

func (v Vector3i) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Axis names one of the three chamber axes.
type Axis uint8

//go:generate go tool stringer -type=Axis -trimprefix=Axis

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Sign selects the positive or negative sense along an axis.
type Sign int8

const (
	Minus Sign = -1
	Plus  Sign = 1
)

// Opposite returns -s.
func (s Sign) Opposite() Sign {
	return -s
}

// Unit returns the unit displacement along axis in the sense of sign.
func Unit(axis Axis, sign Sign) Vector3i {
	var v Vector3i
	switch axis {
	case AxisX:
		v.X = int(sign)
	case AxisY:
		v.Y = int(sign)
	case AxisZ:
		v.Z = int(sign)
	}
	return v
}
