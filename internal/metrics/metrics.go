// Package metrics exposes Prometheus counters for the frame loop and the
// generative modes. A nil *Recorder is valid and records nothing.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "terramorph"

// Recorder groups the collectors shared by the host and the modes.
type Recorder struct {
	registry *prometheus.Registry

	frames          *prometheus.CounterVec
	frameSeconds    prometheus.Histogram
	morphRequests   prometheus.Counter
	influenceEvents *prometheus.CounterVec
	inputDropped    prometheus.Counter
	paramClamps     *prometheus.CounterVec
	modeSwitches    *prometheus.CounterVec
}

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames advanced, by mode.",
		}, []string{"mode"}),
		frameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_advance_seconds",
			Help:      "Wall time spent inside a mode's Advance.",
			Buckets:   []float64{.0005, .001, .002, .004, .008, .016, .033, .066},
		}),
		morphRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "morph_requests_total",
			Help:      "Accepted morph requests.",
		}),
		influenceEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "influence_events_total",
			Help:      "Pointer ray queries, by outcome.",
		}, []string{"outcome"}),
		inputDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_events_dropped_total",
			Help:      "Input events discarded because the queue was full.",
		}),
		paramClamps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parameter_clamps_total",
			Help:      "Configuration values clamped to their documented bounds.",
		}, []string{"key"}),
		modeSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mode_switches_total",
			Help:      "Mode constructions, by mode.",
		}, []string{"mode"}),
	}
	r.registry.MustRegister(
		r.frames, r.frameSeconds, r.morphRequests, r.influenceEvents,
		r.inputDropped, r.paramClamps, r.modeSwitches,
	)
	return r
}

// Registry exposes the underlying registry for gathering in tests and tools.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Frame records one advanced frame for mode.
func (r *Recorder) Frame(mode string, seconds float64) {
	if r == nil {
		return
	}
	r.frames.WithLabelValues(mode).Inc()
	r.frameSeconds.Observe(seconds)
}

// MorphRequested records an accepted morph request.
func (r *Recorder) MorphRequested() {
	if r == nil {
		return
	}
	r.morphRequests.Inc()
}

// Influence records a pointer ray query outcome.
func (r *Recorder) Influence(hit bool) {
	if r == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.influenceEvents.WithLabelValues(outcome).Inc()
}

// InputDropped records a discarded input event.
func (r *Recorder) InputDropped() {
	if r == nil {
		return
	}
	r.inputDropped.Inc()
}

// Clamped records a configuration value clamped to its bounds.
func (r *Recorder) Clamped(key string) {
	if r == nil {
		return
	}
	r.paramClamps.WithLabelValues(key).Inc()
}

// ModeSwitched records a mode construction.
func (r *Recorder) ModeSwitched(mode string) {
	if r == nil {
		return
	}
	r.modeSwitches.WithLabelValues(mode).Inc()
}

// Handler returns the /metrics HTTP handler for this recorder.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// StartHTTP serves /metrics on addr in a background goroutine.
func (r *Recorder) StartHTTP(addr string, log *slog.Logger) {
	if r == nil || addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	go func() {
		log.Info("metrics endpoint listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("metrics endpoint stopped", "err", err)
		}
	}()
}
