package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the catalog service.
type Metrics struct {
	propertiesCreated prometheus.Counter
	imageUploads      *prometheus.CounterVec
	uploadFailures    *prometheus.CounterVec
	uploadBytes       prometheus.Histogram
	uploadLatency     prometheus.Histogram
}

// NewMetrics creates and registers all catalog metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		propertiesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_properties_created_total",
				Help: "Total number of property records created",
			},
		),
		imageUploads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_image_uploads_total",
				Help: "Total number of image files uploaded to object storage",
			},
			[]string{"kind"},
		),
		uploadFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_image_upload_failures_total",
				Help: "Total number of failed image uploads",
			},
			[]string{"kind"},
		),
		uploadBytes: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_image_upload_bytes",
				Help:    "Size of uploaded image files in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
		uploadLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_image_upload_latency_ms",
				Help:    "Latency of object-storage uploads in milliseconds",
				Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
			},
		),
	}
}

// IncrementPropertiesCreated increments the property creation counter.
func (m *Metrics) IncrementPropertiesCreated() {
	m.propertiesCreated.Inc()
}

// ObserveUpload records a successful upload of the given kind ("cover" or
// "gallery") with its size and latency.
func (m *Metrics) ObserveUpload(kind string, sizeBytes int64, latencyMs float64) {
	m.imageUploads.WithLabelValues(kind).Inc()
	m.uploadBytes.Observe(float64(sizeBytes))
	m.uploadLatency.Observe(latencyMs)
}

// IncrementUploadFailures increments the failure counter for the given kind.
func (m *Metrics) IncrementUploadFailures(kind string) {
	m.uploadFailures.WithLabelValues(kind).Inc()
}
