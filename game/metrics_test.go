package game_test

import (
	"testing"

	"github.com/plus3/cubefall/chamber"
	"github.com/plus3/cubefall/game"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := game.NewMetrics(reg)
	require.NoError(t, err)

	s := newSession(t, game.Options{Metrics: m}, chamber.KindLine)
	sched := game.NewGameScheduler(s)
	playUntilTopOut(t, sched)

	assert.Equal(t, float64(13), testutil.ToFloat64(m.PiecesLocked.WithLabelValues("Line")))
	assert.Zero(t, testutil.ToFloat64(m.PlanesCleared))
	id := s.ID().String()
	assert.Zero(t, testutil.ToFloat64(m.Score.WithLabelValues(id)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ToppedOut.WithLabelValues(id)))

	s.Restart()
	assert.Zero(t, testutil.ToFloat64(m.ToppedOut.WithLabelValues(id)))
	assert.Equal(t, float64(13), testutil.ToFloat64(m.PiecesLocked.WithLabelValues("Line")), "counters survive a restart")

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestMetricsSharedBySessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := game.NewMetrics(reg)
	require.NoError(t, err)

	over := newSession(t, game.Options{Metrics: m}, chamber.KindLine)
	playUntilTopOut(t, game.NewGameScheduler(over))

	other := newSession(t, game.Options{Metrics: m}, chamber.KindLine)
	other.Restart()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ToppedOut.WithLabelValues(over.ID().String())),
		"another session's restart leaves this session's gauge alone")
	assert.Zero(t, testutil.ToFloat64(m.ToppedOut.WithLabelValues(other.ID().String())))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ToppedOut), "one series per session")
}

func TestMetricsRegisterOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := game.NewMetrics(reg)
	require.NoError(t, err)

	_, err = game.NewMetrics(reg)
	assert.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	s := newSession(t, game.Options{}, chamber.KindSquare)
	sched := game.NewGameScheduler(s)
	assert.NotPanics(t, func() {
		sched.Once(100)
		s.Restart()
	})
}
