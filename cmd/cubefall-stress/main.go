// Command cubefall-stress plays many headless games at once with random
// intents and prints a performance report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/cubefall/config"
	"github.com/plus3/cubefall/game"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.DefaultConfig()
	cfg.DropDelay = 50 * time.Millisecond
	// Every game start and end logs at info, which floods stderr at stress speed.
	cfg.LogLevel = "warn"

	configPath := flag.String("config", "", "YAML configuration file")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", runtime.NumCPU(), "The number of games played in parallel.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
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
	log.Info("starting stress test", "sessions", *sessions, "duration", *duration)

	registry := prometheus.NewRegistry()
	metrics, err := game.NewMetrics(registry)
	if err != nil {
		log.Error("registering metrics", "err", err)
		os.Exit(1)
	}
	if cfg.MetricsAddr != "" {
		serveMetrics(log, cfg.MetricsAddr, registry)
	}

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Chamber:        fmt.Sprintf("%dx%dx%d", cfg.Length, cfg.Width, cfg.Height),
		DropDelay:      cfg.DropDelay,
		Tick:           cfg.TickInterval,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results := make([]SessionResult, *sessions)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := play(ctx, cfg, uint64(i)+1, log, metrics)
			if err != nil {
				log.Error("session failed", "worker", i, "err", err)
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Add(results)

	log.Info("simulation finished", "frames", report.TotalFrames)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Error("generating report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// play runs one session on the calling goroutine until ctx is done. Frames
// advance by the configured tick without waiting for it, so the run measures
// raw throughput.
func play(ctx context.Context, cfg *config.Config, seed uint64, log *slog.Logger, metrics *game.Metrics) (SessionResult, error) {
	opts := cfg.SessionOptions(log, metrics)
	if opts.Seed != 0 {
		opts.Seed += seed
	}

	session, err := game.NewSession(opts)
	if err != nil {
		return SessionResult{}, err
	}

	pilot := NewAutopilot(seed)
	scheduler := game.NewScheduler(session)
	scheduler.Register(pilot)
	scheduler.Register(&game.InputSystem{})
	scheduler.Register(&game.GravitySystem{})

	res := SessionResult{ID: session.ID().String()}
	dt := cfg.TickInterval.Seconds()

	for ctx.Err() == nil {
		start := time.Now()
		scheduler.Once(dt)
		res.UpdateTime.Samples = append(res.UpdateTime.Samples, time.Since(start))
	}

	res.Frames = scheduler.GetStats().Frames
	res.Games = session.Games()
	res.Intents = pilot.Submitted
	res.Pieces = session.Stats().Pieces()
	res.Planes = session.Stats().Planes()
	res.BestClear = session.Stats().BestClear()
	res.Scores = append(pilot.Finished, session.Chamber().Score())
	return res, nil
}

func serveMetrics(log *slog.Logger, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	go func() {
		log.Info("serving metrics", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "err", err)
		}
	}()
}
