// Package debugui provides Dear ImGui inspection panels for a game session.
// Panels are rendered from a System registered on the session's scheduler,
// so they draw after the frame's gameplay systems have run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/game"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state. Drivers check it before
// treating a key press as a game control.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates the input capture state and defers every item's render
// function to the end of the frame.
type System struct {
	Items []Item
	State InputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (s *System) Execute(frame *game.Frame) {
	s.State.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	s.State.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

// NewSystem returns a System with the standard panels for the scheduler's
// session.
func NewSystem(scheduler *game.Scheduler) *System {
	session := scheduler.Session()
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()
	panel := NewSessionPanel()
	layers := NewLayerViewer()
	inspector := NewSystemInspector()

	return &System{
		Items: []Item{
			{Render: func() { panel.Render(session) }},
			{Render: func() { layers.Render(session.Chamber()) }},
			{Render: func() { perf.Render(scheduler, timer.GetDeltaTime()) }},
			{Render: func() { inspector.Render(scheduler) }},
		},
	}
}
