package game_test

import (
	"fmt"

	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
)

// ExampleSession plays one piece: gravity brings it into the chamber, the
// player nudges and rotates it, then slams it to the floor. The lock happens
// when the frame's commands are flushed.
func ExampleSession() {
	session, err := game.NewSession(game.Options{
		Length: 6, Width: 6, Height: 12,
		Source: func() chamber.Source {
			return chamber.NewSequenceSource(chamber.KindL, chamber.KindSquare)
		},
	})
	if err != nil {
		panic(err)
	}

	scheduler := game.NewGameScheduler(session)
	for range 3 {
		scheduler.Once(1.0)
	}

	session.Submit(game.MoveLeft, game.RotateZPlus, game.HardDrop)
	scheduler.Once(0.016)

	piece, _ := session.Chamber().Falling()
	fmt.Println("pieces locked:", session.Stats().Pieces())
	fmt.Println("floor cells:", session.Chamber().Snapshot().PlaneFilled(0))
	fmt.Println("now falling:", piece.Kind())

	// Output:
	// pieces locked: 1
	// floor cells: 4
	// now falling: Square
}

// ExampleHeading shows the same control meaning different chamber moves as
// the camera orbits.
func ExampleHeading() {
	for h := game.Heading(0); h < 4; h++ {
		fmt.Println(h, h.Resolve(game.Forward), h.Resolve(game.RollForward))
	}

	// Output:
	// 0 MoveLeft RotateYMinus
	// 1 MoveBack RotateXPlus
	// 2 MoveRight RotateYPlus
	// 3 MoveFront RotateXMinus
}
