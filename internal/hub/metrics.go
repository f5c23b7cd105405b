package hub

import (
	"time"

	"github.com/clambin/ledhub/internal/fade"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buckets = []float64{.00001, .00005, .0001, .0005, .001, .005}
)

var _ prometheus.Collector = metrics{}

type metrics struct {
	effectTicks   *prometheus.CounterVec
	fadeLevel     prometheus.Gauge
	fadeMode      *prometheus.GaugeVec
	cycleDuration prometheus.Histogram
}

func newMetrics() metrics {
	return metrics{
		effectTicks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledhub_effect_ticks_total",
				Help: "Number of times an effect was ticked.",
			},
			[]string{"effect"},
		),
		fadeLevel: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledhub_fade_brightness",
				Help: "Brightness multiplier applied by the fade engine (1 when no fade is active).",
			},
		),
		fadeMode: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledhub_fade_mode",
				Help: "Active fade mode (1 for the active mode, 0 otherwise).",
			},
			[]string{"mode"},
		),
		cycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledhub_cycle_duration_seconds",
				Help:    "A histogram of the time spent in one scheduler cycle.",
				Buckets: buckets,
			},
		),
	}
}

func (m metrics) observe(engine *fade.Engine, duration time.Duration) {
	m.fadeLevel.Set(engine.Brightness())
	for _, mode := range fade.Modes {
		var value float64
		if mode == engine.Mode() {
			value = 1
		}
		m.fadeMode.WithLabelValues(mode.String()).Set(value)
	}
	m.cycleDuration.Observe(duration.Seconds())
}

func (m metrics) Describe(ch chan<- *prometheus.Desc) {
	m.effectTicks.Describe(ch)
	m.fadeLevel.Describe(ch)
	m.fadeMode.Describe(ch)
	m.cycleDuration.Describe(ch)
}

func (m metrics) Collect(ch chan<- prometheus.Metric) {
	m.effectTicks.Collect(ch)
	m.fadeLevel.Collect(ch)
	m.fadeMode.Collect(ch)
	m.cycleDuration.Collect(ch)
}
