// Command cubefall-tui plays a chamber in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/cubefall/config"
	"github.com/plus3/cubefall/game"
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

	// The screen owns the terminal, so logs go to a file or nowhere.
	logOut, closeLog, err := cfg.LogOutput(io.Discard)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	log := cfg.Logger(logOut)

	session, err := game.NewSession(cfg.SessionOptions(log, nil))
	if err != nil {
		log.Error("starting session", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	app := NewApp(screen, game.NewGameScheduler(session))
	run(screen, app, cfg.TickInterval)
	log.Info("quit", "score", session.Chamber().Score(), "games", session.Games())
}

func run(screen tcell.Screen, app *App, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	app.Draw()
	lastTime := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !app.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			app.Tick(now.Sub(lastTime).Seconds())
			lastTime = now
		}
	}
}
