// Package status exports session metrics through a prometheus registry
package status

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/geometry"
)

const namespace = "blockfall"

// Registry is the metrics facade subscribed to engine events
// Label values are bounded: the lines label is the row count of a single clear
// and the piece label an archetype name
type Registry struct {
	reg *prometheus.Registry

	// ===== GAMEPLAY =====
	piecesSpawned *prometheus.CounterVec
	piecesLocked  prometheus.Counter
	linesCleared *prometheus.CounterVec
	rotations    prometheus.Counter
	gameOvers    prometheus.Counter
	pauses       prometheus.Counter

	// ===== PROGRESS =====
	score prometheus.Gauge
	level prometheus.Gauge

	// ===== LOOP =====
	frameDuration prometheus.Histogram
}

// NewRegistry creates a registry with every collector registered
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Registry{
		reg: reg,

		piecesSpawned: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_spawned_total",
			Help:      "Pieces promoted to current, by archetype",
		}, []string{"piece"}),
		piecesLocked: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_locked_total",
			Help:      "Pieces locked into the board",
		}),
		linesCleared: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_clears_total",
			Help:      "Line clear events by number of rows removed",
		}, []string{"lines"}),
		rotations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Successful rotations including kicked ones",
		}),
		gameOvers: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Sessions ended by lock-out",
		}),
		pauses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pauses_total",
			Help:      "Times the session was paused",
		}),

		score: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Current score",
		}),
		level: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "level",
			Help:      "Current level",
		}),

		frameDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Processing time of one loop iteration, excluding the pacing sleep",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.032},
		}),
	}
}

// HandleEvent implements engine.EventHandler
func (r *Registry) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventLock:
		r.piecesLocked.Inc()
	case engine.EventLinesCleared:
		r.linesCleared.WithLabelValues(strconv.Itoa(ev.Lines)).Inc()
	case engine.EventRotate:
		r.rotations.Inc()
	case engine.EventGameOver:
		r.gameOvers.Inc()
	case engine.EventPause:
		r.pauses.Inc()
	}
	r.score.Set(float64(ev.Score))
	r.level.Set(float64(ev.Level))
}

// ObserveSpawn counts the piece that just became current
// Matches the engine.WithSpawnObserver callback signature
func (r *Registry) ObserveSpawn(current, _ int) {
	r.piecesSpawned.WithLabelValues(geometry.Name(current)).Inc()
}

// ObserveFrame records one iteration's processing time
func (r *Registry) ObserveFrame(d time.Duration) {
	r.frameDuration.Observe(d.Seconds())
}

// Gatherer exposes the underlying registry
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
