package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/palette"
)

const (
	tileGap   = 2
	tileTop   = 2
	labelRows = 1
)

var runeControls = map[rune]game.Control{
	'w': game.Forward,
	's': game.Backward,
	'a': game.StrafeLeft,
	'd': game.StrafeRight,
	'q': game.Rise,
	'e': game.Sink,
	'i': game.RollForward,
	'k': game.RollBackward,
	'j': game.TiltLeft,
	'l': game.TiltRight,
	'u': game.SpinLeft,
	'o': game.SpinRight,
	'x': game.Drop,
	' ': game.Slam,
}

var (
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 100))
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// App draws a session onto a terminal screen and turns key events into
// intents.
type App struct {
	screen    tcell.Screen
	session   *game.Session
	scheduler *game.Scheduler
	heading   game.Heading
}

func NewApp(screen tcell.Screen, scheduler *game.Scheduler) *App {
	return &App{
		screen:    screen,
		session:   scheduler.Session(),
		scheduler: scheduler,
	}
}

// HandleEvent applies ev and reports whether the app should keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.heading = a.heading.Turn(chamber.Minus)
		case tcell.KeyRight:
			a.heading = a.heading.Turn(chamber.Plus)
		case tcell.KeyRune:
			a.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'p':
		a.session.TogglePause()
	case 'r':
		a.session.Restart()
	default:
		if c, ok := runeControls[r]; ok {
			a.session.Submit(a.heading.Resolve(c))
		}
	}
}

// Tick advances the session by dt seconds and redraws.
func (a *App) Tick(dt float64) {
	a.scheduler.Once(dt)
	a.Draw()
}

func (a *App) Draw() {
	a.screen.Clear()

	c := a.session.Chamber()
	snap := c.Snapshot()
	width, _ := a.screen.Size()

	a.print(0, 0, statusStyle, a.status())

	tileW := snap.Length() + tileGap
	tileH := snap.Width() + tileGap + labelRows
	cols := max(1, width/tileW)

	for z := snap.Height() - 1; z >= 0; z-- {
		i := snap.Height() - 1 - z
		ox := (i % cols) * tileW
		oy := tileTop + (i/cols)*tileH

		a.print(ox, oy, labelStyle, fmt.Sprintf("z%d", z))
		for x := 0; x < snap.Length(); x++ {
			for y := 0; y < snap.Width(); y++ {
				col := snap.At(x, y, z)
				style := emptyStyle
				if col != chamber.Nothing {
					rgba := palette.RGBA(col)
					style = tcell.StyleDefault.Foreground(
						tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)),
					)
				}
				a.screen.SetContent(ox+x, oy+labelRows+snap.Width()-1-y, palette.Rune(col), nil, style)
			}
		}
	}

	a.screen.Show()
}

func (a *App) status() string {
	c := a.session.Chamber()
	state := "running"
	switch {
	case c.ToppedOut():
		state = "GAME OVER (r restarts)"
	case a.session.Paused():
		state = "paused"
	}
	return fmt.Sprintf("score %d  next %s  heading %d  game %d  %s",
		c.Score(), c.Next().Kind(), a.heading, a.session.Games(), state)
}

func (a *App) print(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
