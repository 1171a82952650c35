package game

import "github.com/plus3/cubefall/chamber"

// Intent is a single request from a player or autopilot to act on the
// falling piece.
type Intent uint8

//go:generate go tool stringer -type=Intent

const (
	MoveLeft Intent = iota
	MoveRight
	MoveBack
	MoveFront
	MoveDown
	MoveUp
	RotateXMinus
	RotateXPlus
	RotateYMinus
	RotateYPlus
	RotateZMinus
	RotateZPlus
	SoftDrop
	HardDrop
)

// Move returns the intent that shifts the piece one cell along axis.
func Move(axis chamber.Axis, sign chamber.Sign) Intent {
	return Intent(int(axis)*2 + signIndex(sign))
}

// Rotate returns the intent that turns the piece a quarter about axis.
func Rotate(axis chamber.Axis, sign chamber.Sign) Intent {
	return RotateXMinus + Intent(int(axis)*2+signIndex(sign))
}

func signIndex(sign chamber.Sign) int {
	if sign == chamber.Plus {
		return 1
	}
	return 0
}

// IsMove reports whether i is one of the six translations.
func (i Intent) IsMove() bool { return i <= MoveUp }

// IsRotate reports whether i is one of the six rotations.
func (i Intent) IsRotate() bool { return i >= RotateXMinus && i <= RotateZPlus }

// IsVertical reports whether i moves the piece along Z.
func (i Intent) IsVertical() bool { return i == MoveDown || i == MoveUp }

// Axis returns the axis a move or rotation acts on. Drops report AxisZ.
func (i Intent) Axis() chamber.Axis {
	switch {
	case i.IsMove():
		return chamber.Axis(i / 2)
	case i.IsRotate():
		return chamber.Axis((i - RotateXMinus) / 2)
	}
	return chamber.AxisZ
}

// Sign returns the direction of a move or rotation. Drops report Minus.
func (i Intent) Sign() chamber.Sign {
	switch {
	case i.IsMove():
		if i%2 == 1 {
			return chamber.Plus
		}
	case i.IsRotate():
		if (i-RotateXMinus)%2 == 1 {
			return chamber.Plus
		}
	}
	return chamber.Minus
}
