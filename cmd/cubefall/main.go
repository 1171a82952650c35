// Command cubefall plays a chamber in a window. The chamber is drawn as a
// strip of horizontal layers, and Dear ImGui panels overlay the session
// state.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubefall/config"
	"github.com/plus3/cubefall/debugui"
	debugui_ebiten "github.com/plus3/cubefall/debugui/ebiten"
	"github.com/plus3/cubefall/game"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	cfg := config.DefaultConfig()
	configPath := flag.String("config", "", "YAML configuration file")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Merge(cfg, file, config.Explicit(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logOut, closeLog, err := cfg.LogOutput(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	log := cfg.Logger(logOut)

	session, err := game.NewSession(cfg.SessionOptions(log, nil))
	if err != nil {
		log.Error("starting session", "err", err)
		os.Exit(1)
	}

	backend := debugui_ebiten.NewImguiBackend("Cubefall", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scheduler := game.NewGameScheduler(session)
	ui := debugui.NewSystem(scheduler)
	scheduler.Register(ui)

	g := &Game{
		session:   session,
		scheduler: scheduler,
		backend:   backend,
		ui:        ui,
		view:      NewLayerView(),
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop", "err", err)
		os.Exit(1)
	}
}

// Game implements ebiten.Game on top of a session scheduler.
type Game struct {
	session   *game.Session
	scheduler *game.Scheduler
	backend   *debugui_ebiten.ImguiBackend
	ui        *debugui.System
	view      *LayerView
	heading   game.Heading
}

func (g *Game) Update() error {
	if pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.backend.BeginFrame()

	if !g.ui.State.WantCaptureKeyboard {
		g.handleKeys()
	}
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	g.backend.EndFrame()
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case pressed(ebiten.KeyP):
		g.session.TogglePause()
	case pressed(ebiten.KeyR):
		g.session.Restart()
	}

	if turn, ok := turnFor(); ok {
		g.heading = g.heading.Turn(turn)
	}

	for _, c := range controlsFor() {
		g.session.Submit(g.heading.Resolve(c))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.session, g.heading)
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
