package game

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats summarizes what a Scheduler has run so far.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	// SimulatedTime is the sum of every frame's DeltaTime, in seconds.
	SimulatedTime float64
	Systems       []SystemStats
}

// SystemStats is the wall-clock cost of one registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

func (st *SystemStats) observe(d time.Duration) {
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	if st.ExecutionCount == 1 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

type timedSystem struct {
	System
	stats SystemStats
}

func (ts *timedSystem) Execute(frame *Frame) {
	start := time.Now()
	ts.System.Execute(frame)
	ts.stats.observe(time.Since(start))
}

// Scheduler advances a Session one Frame at a time. Systems run in
// registration order and the frame's commands are flushed once all of them
// are done.
type Scheduler struct {
	session *Session
	systems []*timedSystem
	frame   Frame
}

// NewScheduler creates a new scheduler driving session.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{session: session}
}

// NewGameScheduler returns a scheduler with the standard gameplay systems
// registered: input first, then gravity.
func NewGameScheduler(session *Session) *Scheduler {
	s := NewScheduler(session)
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	return s
}

// Session returns the session the scheduler drives.
func (s *Scheduler) Session() *Session { return s.session }

// Systems returns the registered systems in execution order.
func (s *Scheduler) Systems() []System {
	out := make([]System, len(s.systems))
	for i, ts := range s.systems {
		out[i] = ts.System
	}
	return out
}

// Register adds a system to the end of the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, &timedSystem{
		System: system,
		stats:  SystemStats{Name: reflect.Indirect(reflect.ValueOf(system)).Type().Name()},
	})
}

// Once runs a single frame covering dt seconds of simulated time.
func (s *Scheduler) Once(dt float64) {
	s.frame = Frame{
		Number:    s.frame.Number + 1,
		DeltaTime: dt,
		Elapsed:   s.frame.Elapsed + dt,
		Commands:  newCommands(),
		Session:   s.session,
	}
	frame := &s.frame

	for _, ts := range s.systems {
		ts.Execute(frame)
	}
	frame.Commands.Flush(s.session)
}

// Run ticks the scheduler every interval until ctx is cancelled. Each frame
// covers the wall-clock time since the previous one.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a snapshot of the scheduler's frame and system counters.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:   len(s.systems),
		Frames:        s.frame.Number,
		SimulatedTime: s.frame.Elapsed,
		Systems:       make([]SystemStats, len(s.systems)),
	}
	for i, ts := range s.systems {
		stats.Systems[i] = ts.stats
		stats.TotalExecutions += ts.stats.ExecutionCount
	}
	return stats
}
