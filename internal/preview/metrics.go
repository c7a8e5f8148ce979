package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chartview"

type metrics struct {
	rendersTotal    *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	rejectedUpdates *prometheus.CounterVec
	generation      prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		rendersTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preview_renders_total",
			Help:      "Total number of charts drawn by the preview server per output format.",
		}, []string{"format"}),
		renderDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "preview_render_duration_seconds",
			Help:      "Time spent drawing and encoding a chart.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"format"}),
		rejectedUpdates: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preview_rejected_updates_total",
			Help:      "Total number of chart updates rejected because of invalid input.",
		}, []string{"route"}),
		generation: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "preview_frame_generation",
			Help:      "Generation of the frame currently served.",
		}),
	}
}
