// Package metrics exports carousel statistics to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Collector is a carousel.Observer that records into Prometheus metrics.
type Collector struct {
	frames     *prometheus.CounterVec
	renderTime prometheus.Histogram
	photoLoads *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carousel_frames_total",
				Help: "Frames rendered, by result",
			},
			[]string{"result"},
		),
		renderTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "carousel_render_seconds",
				Help:    "Time spent rendering one frame",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		photoLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carousel_photo_loads_total",
				Help: "Background photo loads, by result",
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(c.frames, c.renderTime, c.photoLoads)
	}
	return c
}

// FrameRendered implements carousel.Observer.
func (c *Collector) FrameRendered(d time.Duration, err error) {
	c.frames.WithLabelValues(result(err)).Inc()
	c.renderTime.Observe(d.Seconds())
}

// PhotoLoaded implements carousel.Observer.
func (c *Collector) PhotoLoaded(err error) {
	c.photoLoads.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
