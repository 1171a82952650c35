package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
)

// bindings maps keys to camera-relative controls. Moves use WASD with Q and
// E for the vertical cheat, rotations sit on the IJKL block.
var bindings = map[ebiten.Key]game.Control{
	ebiten.KeyW:         game.Forward,
	ebiten.KeyS:         game.Backward,
	ebiten.KeyA:         game.StrafeLeft,
	ebiten.KeyD:         game.StrafeRight,
	ebiten.KeyQ:         game.Rise,
	ebiten.KeyE:         game.Sink,
	ebiten.KeyI:         game.RollForward,
	ebiten.KeyK:         game.RollBackward,
	ebiten.KeyJ:         game.TiltLeft,
	ebiten.KeyL:         game.TiltRight,
	ebiten.KeyU:         game.SpinLeft,
	ebiten.KeyO:         game.SpinRight,
	ebiten.KeyShiftLeft: game.Drop,
	ebiten.KeySpace:     game.Slam,
}

// bindingOrder fixes the order controls are submitted in when several keys
// go down in the same tick.
var bindingOrder = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeyQ, ebiten.KeyE,
	ebiten.KeyI, ebiten.KeyK, ebiten.KeyJ, ebiten.KeyL, ebiten.KeyU, ebiten.KeyO,
	ebiten.KeyShiftLeft, ebiten.KeySpace,
}

func pressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func controlsFor() []game.Control {
	var out []game.Control
	for _, k := range bindingOrder {
		if pressed(k) {
			out = append(out, bindings[k])
		}
	}
	return out
}

// turnFor reports a camera turn from the arrow keys.
func turnFor() (chamber.Sign, bool) {
	switch {
	case pressed(ebiten.KeyArrowLeft):
		return chamber.Minus, true
	case pressed(ebiten.KeyArrowRight):
		return chamber.Plus, true
	}
	return 0, false
}
