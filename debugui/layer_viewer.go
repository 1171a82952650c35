package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/palette"
)

// LayerViewer shows one horizontal plane of the chamber as a grid of letters.
type LayerViewer struct {
	layer      int32
	followDrop bool
}

func NewLayerViewer() *LayerViewer {
	return &LayerViewer{followDrop: true}
}

func (lv *LayerViewer) Render(c *chamber.Chamber) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 320), imgui.CondOnce)

	if !imgui.BeginV("Layers", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := c.Snapshot()

	imgui.Checkbox("Follow piece", &lv.followDrop)
	if lv.followDrop {
		if falling, ok := c.Falling(); ok {
			lv.layer = int32(falling.Center().Z)
		}
	}

	imgui.SetNextItemWidth(150)
	imgui.InputInt("Layer", &lv.layer)
	lv.layer = min(max(lv.layer, 0), int32(snap.Height()-1))

	z := int(lv.layer)
	imgui.Text(fmt.Sprintf("Filled: %d / %d", snap.PlaneFilled(z), snap.Length()*snap.Width()))
	imgui.Separator()

	for y := snap.Width() - 1; y >= 0; y-- {
		for x := 0; x < snap.Length(); x++ {
			col := snap.At(x, y, z)
			if x > 0 {
				imgui.SameLine()
			}
			if col == chamber.Nothing {
				imgui.Text(".")
				continue
			}
			rgba := palette.RGBA(col)
			imgui.TextColored(imgui.NewVec4(
				float32(rgba.R)/255, float32(rgba.G)/255, float32(rgba.B)/255, 1,
			), string(palette.Rune(col)))
		}
	}

	imgui.End()
}
