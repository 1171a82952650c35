package game

import "github.com/plus3/cubefall/chamber"

// Heading is the quarter-turn an orbiting camera faces, 0 through 3. Player
// controls are relative to it, so "forward" always moves the piece away
// from the viewer.
type Heading uint8

// Turn returns the heading one quarter-turn in the direction of sign.
func (h Heading) Turn(sign chamber.Sign) Heading {
	return Heading((int(h%4) + int(sign) + 4) % 4)
}

// Control is a camera-relative player action.
type Control uint8

//go:generate go tool stringer -type=Control

const (
	Forward Control = iota
	Backward
	StrafeLeft
	StrafeRight
	RollForward
	RollBackward
	TiltLeft
	TiltRight
	SpinLeft
	SpinRight
	Rise
	Sink
	Drop
	Slam
)

type direction struct {
	axis chamber.Axis
	sign chamber.Sign
}

func (d direction) flip() direction {
	return direction{d.axis, d.sign.Opposite()}
}

// Per-heading directions of the forward and left controls. Roll turns about
// the strafe axis, tilt about the forward axis.
var (
	forwardDirs = [4]direction{
		{chamber.AxisX, chamber.Minus},
		{chamber.AxisY, chamber.Minus},
		{chamber.AxisX, chamber.Plus},
		{chamber.AxisY, chamber.Plus},
	}
	leftDirs = [4]direction{
		{chamber.AxisY, chamber.Minus},
		{chamber.AxisX, chamber.Plus},
		{chamber.AxisY, chamber.Plus},
		{chamber.AxisX, chamber.Minus},
	}
)

// Resolve maps c to the absolute intent it means at heading h.
func (h Heading) Resolve(c Control) Intent {
	forward := forwardDirs[h%4]
	left := leftDirs[h%4]

	switch c {
	case Forward:
		return Move(forward.axis, forward.sign)
	case Backward:
		return Move(forward.flip().axis, forward.flip().sign)
	case StrafeLeft:
		return Move(left.axis, left.sign)
	case StrafeRight:
		return Move(left.flip().axis, left.flip().sign)
	case RollForward:
		return Rotate(left.axis, left.sign)
	case RollBackward:
		return Rotate(left.flip().axis, left.flip().sign)
	case TiltLeft:
		return Rotate(forward.flip().axis, forward.flip().sign)
	case TiltRight:
		return Rotate(forward.axis, forward.sign)
	case SpinLeft:
		return RotateZMinus
	case SpinRight:
		return RotateZPlus
	case Rise:
		return MoveUp
	case Sink:
		return MoveDown
	case Slam:
		return HardDrop
	}
	return SoftDrop
}
