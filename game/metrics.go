package game

import (
	"github.com/plus3/cubefall/chamber"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports session progress as Prometheus collectors. Counters sum
// over every session sharing the Metrics; the gauges carry a session label
// so concurrent games keep their own series. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	PiecesLocked  *prometheus.CounterVec
	PlanesCleared prometheus.Counter
	Score         *prometheus.GaugeVec
	ToppedOut     *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PiecesLocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cubefall",
			Name:      "pieces_locked_total",
			Help:      "Pieces locked into the chamber, by kind.",
		}, []string{"kind"}),
		PlanesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cubefall",
			Name:      "planes_cleared_total",
			Help:      "Full planes removed from the chamber.",
		}),
		Score: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cubefall",
			Name:      "score",
			Help:      "Score of the session's current game.",
		}, []string{"session"}),
		ToppedOut: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cubefall",
			Name:      "topped_out",
			Help:      "1 once the session's current game is over.",
		}, []string{"session"}),
	}

	collectors := []prometheus.Collector{m.PiecesLocked, m.PlanesCleared, m.Score, m.ToppedOut}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(session string, res chamber.LockResult, score int64) {
	if m == nil {
		return
	}
	m.PiecesLocked.WithLabelValues(res.Kind.String()).Inc()
	m.PlanesCleared.Add(float64(res.Cleared))
	m.Score.WithLabelValues(session).Set(float64(score))
	if res.ToppedOut {
		m.ToppedOut.WithLabelValues(session).Set(1)
	}
}

func (m *Metrics) reset(session string) {
	if m == nil {
		return
	}
	m.Score.WithLabelValues(session).Set(0)
	m.ToppedOut.WithLabelValues(session).Set(0)
}
