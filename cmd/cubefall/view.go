package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/palette"
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	emptyColor      = color.RGBA{44, 44, 52, 255}
	focusColor      = color.RGBA{240, 240, 240, 255}
)

// LayerView draws every playable plane of the chamber side by side, top
// plane first. Planes holding the falling piece are outlined and the rest
// are dimmed.
type LayerView struct {
	Origin   image.Point
	CellSize int
	Gap      int
	DimBy    float64
}

func NewLayerView() *LayerView {
	return &LayerView{
		Origin:   image.Pt(600, 40),
		CellSize: 14,
		Gap:      18,
		DimBy:    0.55,
	}
}

// tileOrigin returns the top-left corner of the tile for plane z, wrapping
// tiles into rows that fit screenWidth.
func (v *LayerView) tileOrigin(z, height, length, width, screenWidth int) image.Point {
	tileW := length*v.CellSize + v.Gap
	tileH := width*v.CellSize + v.Gap
	cols := max(1, (screenWidth-v.Origin.X)/tileW)
	i := height - 1 - z
	return v.Origin.Add(image.Pt((i%cols)*tileW, (i/cols)*tileH))
}

func (v *LayerView) Draw(screen *ebiten.Image, session *game.Session, heading game.Heading) {
	screen.Fill(backgroundColor)

	c := session.Chamber()
	snap := c.Snapshot()
	focus := focusPlanes(c)
	screenWidth := screen.Bounds().Dx()
	cell := float32(v.CellSize)

	for z := 0; z < snap.Height(); z++ {
		origin := v.tileOrigin(z, snap.Height(), snap.Length(), snap.Width(), screenWidth)
		ox, oy := float32(origin.X), float32(origin.Y)

		for x := 0; x < snap.Length(); x++ {
			for y := 0; y < snap.Width(); y++ {
				col := emptyColor
				if cc := snap.At(x, y, z); cc != chamber.Nothing {
					col = palette.RGBA(cc)
					if !focus[z] {
						col = palette.Dim(col, v.DimBy)
					}
				}
				// Y grows upward on screen so the view matches the layer viewer panel.
				sx := ox + float32(x)*cell
				sy := oy + float32(snap.Width()-1-y)*cell
				vector.DrawFilledRect(screen, sx+1, sy+1, cell-2, cell-2, col, false)
			}
		}

		if focus[z] {
			w := float32(snap.Length()) * cell
			h := float32(snap.Width()) * cell
			vector.StrokeRect(screen, ox-1, oy-1, w+2, h+2, 1, focusColor, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("z%d", z), origin.X, origin.Y-v.Gap+2)
	}

	ebitenutil.DebugPrintAt(screen, status(session, heading), v.Origin.X, 8)
}

// focusPlanes reports which planes hold a block of the falling piece.
func focusPlanes(c *chamber.Chamber) map[int]bool {
	focus := make(map[int]bool, 4)
	if falling, ok := c.Falling(); ok {
		for _, b := range falling.Blocks() {
			focus[b.Z] = true
		}
	}
	return focus
}

func status(session *game.Session, heading game.Heading) string {
	c := session.Chamber()
	state := "running"
	switch {
	case c.ToppedOut():
		state = "game over, R to restart"
	case session.Paused():
		state = "paused"
	}
	return fmt.Sprintf("score %d  next %s  heading %d  %s", c.Score(), c.Next().Kind(), heading, state)
}
