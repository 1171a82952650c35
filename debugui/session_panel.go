package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
)

type SessionPanel struct {
	confirmRestart bool
}

func NewSessionPanel() *SessionPanel {
	return &SessionPanel{}
}

func (sp *SessionPanel) Render(session *game.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	c := session.Chamber()
	stats := session.Stats()

	imgui.Text(fmt.Sprintf("ID: %s", session.ID()))
	imgui.Text(fmt.Sprintf("Game: %d", session.Games()))
	imgui.Text(fmt.Sprintf("Chamber: %dx%dx%d", c.Length(), c.Width(), c.Height()))

	switch {
	case c.ToppedOut():
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	case session.Paused():
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	default:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	if imgui.Button("Pause") {
		session.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		sp.confirmRestart = true
	}
	if sp.confirmRestart {
		imgui.SameLine()
		if imgui.Button("Confirm") {
			session.Restart()
			sp.confirmRestart = false
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", c.Score()))
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces()))
	imgui.Text(fmt.Sprintf("Planes: %d (best %d at once)", stats.Planes(), stats.BestClear()))

	if falling, ok := c.Falling(); ok {
		imgui.Text(fmt.Sprintf("Falling: %s at %s", falling.Kind(), falling.Center()))
		if !c.PieceActive() {
			imgui.SameLine()
			imgui.Text("(above ceiling)")
		}
	}
	imgui.Text(fmt.Sprintf("Next: %s", c.Next().Kind()))

	cheats := session.Cheats()
	if cheats.VerticalMoves || cheats.ManualLock {
		imgui.Separator()
		if cheats.VerticalMoves {
			imgui.BulletText("Vertical moves")
		}
		if cheats.ManualLock {
			imgui.BulletText("Manual lock")
		}
	}

	if imgui.TreeNodeStr("Pieces by Kind") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("KindTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Locked")
			imgui.TableHeadersRow()

			for _, k := range chamber.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(k.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Locked(k)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		for _, bucket := range stats.Clears() {
			imgui.BulletText(fmt.Sprintf("%d planes: %d locks", bucket.Planes, bucket.Locks))
		}
		imgui.TreePop()
	}

	imgui.End()
}
