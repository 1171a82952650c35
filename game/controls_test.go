package game_test

import (
	"testing"

	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
	"github.com/stretchr/testify/assert"
)

func TestHeadingTurn(t *testing.T) {
	var h game.Heading
	assert.Equal(t, game.Heading(3), h.Turn(chamber.Minus))
	assert.Equal(t, game.Heading(1), h.Turn(chamber.Plus))
	assert.Equal(t, game.Heading(0), game.Heading(3).Turn(chamber.Plus))

	for range 4 {
		h = h.Turn(chamber.Plus)
	}
	assert.Equal(t, game.Heading(0), h)
}

func TestHeadingResolve(t *testing.T) {
	tests := []struct {
		control game.Control
		want    [4]game.Intent
	}{
		{game.Forward, [4]game.Intent{game.MoveLeft, game.MoveBack, game.MoveRight, game.MoveFront}},
		{game.Backward, [4]game.Intent{game.MoveRight, game.MoveFront, game.MoveLeft, game.MoveBack}},
		{game.StrafeLeft, [4]game.Intent{game.MoveBack, game.MoveRight, game.MoveFront, game.MoveLeft}},
		{game.StrafeRight, [4]game.Intent{game.MoveFront, game.MoveLeft, game.MoveBack, game.MoveRight}},
		{game.RollForward, [4]game.Intent{game.RotateYMinus, game.RotateXPlus, game.RotateYPlus, game.RotateXMinus}},
		{game.RollBackward, [4]game.Intent{game.RotateYPlus, game.RotateXMinus, game.RotateYMinus, game.RotateXPlus}},
		{game.TiltLeft, [4]game.Intent{game.RotateXPlus, game.RotateYPlus, game.RotateXMinus, game.RotateYMinus}},
		{game.TiltRight, [4]game.Intent{game.RotateXMinus, game.RotateYMinus, game.RotateXPlus, game.RotateYPlus}},
		{game.SpinLeft, [4]game.Intent{game.RotateZMinus, game.RotateZMinus, game.RotateZMinus, game.RotateZMinus}},
		{game.SpinRight, [4]game.Intent{game.RotateZPlus, game.RotateZPlus, game.RotateZPlus, game.RotateZPlus}},
		{game.Rise, [4]game.Intent{game.MoveUp, game.MoveUp, game.MoveUp, game.MoveUp}},
		{game.Sink, [4]game.Intent{game.MoveDown, game.MoveDown, game.MoveDown, game.MoveDown}},
		{game.Drop, [4]game.Intent{game.SoftDrop, game.SoftDrop, game.SoftDrop, game.SoftDrop}},
		{game.Slam, [4]game.Intent{game.HardDrop, game.HardDrop, game.HardDrop, game.HardDrop}},
	}

	for _, tt := range tests {
		t.Run(tt.control.String(), func(t *testing.T) {
			for h := range 4 {
				assert.Equal(t, tt.want[h], game.Heading(h).Resolve(tt.control), "heading %d", h)
			}
		})
	}
}

func TestControlsCancelOut(t *testing.T) {
	pairs := [][2]game.Control{
		{game.Forward, game.Backward},
		{game.StrafeLeft, game.StrafeRight},
		{game.RollForward, game.RollBackward},
		{game.TiltLeft, game.TiltRight},
		{game.SpinLeft, game.SpinRight},
	}

	for h := range 4 {
		heading := game.Heading(h)
		for _, pair := range pairs {
			s := newSession(t, game.Options{}, chamber.KindL)
			before := falling(t, s)

			assert.True(t, s.Do(heading.Resolve(pair[0])), "%s at heading %d", pair[0], h)
			assert.True(t, s.Do(heading.Resolve(pair[1])), "%s at heading %d", pair[1], h)
			assert.Equal(t, before, falling(t, s), "%s then %s at heading %d", pair[0], pair[1], h)
		}
	}
}
