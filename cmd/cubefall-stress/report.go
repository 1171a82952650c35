package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Sessions  int
	Chamber   string
	DropDelay time.Duration
	Tick      time.Duration

	// Results
	TotalFrames    int64
	TotalGames     int
	TotalPieces    int
	TotalPlanes    int
	BestScore      int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Results        []SessionResult
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// SessionResult is what one worker observed over the run. Scores holds the
// final score of every finished game plus the one still in progress.
type SessionResult struct {
	ID         string
	Frames     int64
	Games      int
	Intents    int
	Pieces     int
	Planes     int
	BestClear  int
	Scores     []int64
	UpdateTime Stats
}

// Best returns the highest score the session reached.
func (r SessionResult) Best() int64 {
	if len(r.Scores) == 0 {
		return 0
	}
	return slices.Max(r.Scores)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add folds per-session results into the report totals. Frame samples from
// every session are pooled into UpdateTime.
func (r *Report) Add(results []SessionResult) {
	for _, res := range results {
		if res.ID == "" {
			continue
		}
		res.UpdateTime.Finalize()
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTime.Samples...)
		res.UpdateTime.Samples = nil

		r.TotalFrames += res.Frames
		r.TotalGames += res.Games
		r.TotalPieces += res.Pieces
		r.TotalPlanes += res.Planes
		r.BestScore = max(r.BestScore, res.Best())
		r.Results = append(r.Results, res)
	}
	r.UpdateTime.Finalize()
	r.UpdateTime.Samples = nil
}

// FramesPerSecond is the combined simulation rate across all sessions.
func (r *Report) FramesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalFrames) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Cubefall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Chamber:** {{.Chamber}}
- **Drop Delay:** {{.DropDelay}}
- **Simulated Tick:** {{.Tick}}

## Performance Results
- **Total Frames:** {{.TotalFrames}} ({{printf "%.0f" .FramesPerSecond}} frames/s)
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Gameplay
- **Games:** {{.TotalGames}}
- **Pieces Locked:** {{.TotalPieces}}
- **Planes Cleared:** {{.TotalPlanes}}
- **Best Score:** {{.BestScore}}

| Session | Frames | Games | Intents | Pieces | Planes | Best Clear | Best Score | Avg Frame |
|---|---|---|---|---|---|---|---|---|
{{range .Results}}| {{.ID}} | {{.Frames}} | {{.Games}} | {{.Intents}} | {{.Pieces}} | {{.Planes}} | {{.BestClear}} | {{.Best}} | {{.UpdateTime.Avg}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
