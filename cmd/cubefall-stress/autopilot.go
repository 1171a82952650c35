package main

import (
	"math/rand/v2"

	"github.com/plus3/cubefall/game"
)

var steering = []game.Intent{
	game.MoveLeft, game.MoveRight, game.MoveBack, game.MoveFront,
	game.RotateXMinus, game.RotateXPlus,
	game.RotateYMinus, game.RotateYPlus,
	game.RotateZMinus, game.RotateZPlus,
}

// Autopilot plays a session with random intents and starts a new game
// whenever the current one ends.
type Autopilot struct {
	rng       *rand.Rand
	Submitted int
	Finished  []int64
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

func (a *Autopilot) Execute(frame *game.Frame) {
	session := frame.Session
	c := session.Chamber()

	if c.ToppedOut() {
		a.Finished = append(a.Finished, c.Score())
		frame.Commands.Restart()
		return
	}

	for range a.rng.IntN(3) {
		session.Submit(steering[a.rng.IntN(len(steering))])
		a.Submitted++
	}
	if c.PieceActive() && a.rng.IntN(8) == 0 {
		session.Submit(game.HardDrop)
		a.Submitted++
	}
}
