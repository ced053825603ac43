package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. One instance is built
// at process start and handed to the server explicitly.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	UploadsRejected prometheus.Counter
	UploadRetries   prometheus.Counter
	JobsSubmitted   prometheus.Counter
	JobStatusReads  *prometheus.CounterVec
	Summarizations  *prometheus.CounterVec
}

// New registers all collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "speechscribe_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "speechscribe_http_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		UploadsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "speechscribe_uploads_rejected_total",
			Help: "Uploads rejected by validation before any provider call.",
		}),
		UploadRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "speechscribe_upload_retries_total",
			Help: "Provider upload attempts beyond the first.",
		}),
		JobsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "speechscribe_jobs_submitted_total",
			Help: "Transcription jobs created at the provider.",
		}),
		JobStatusReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "speechscribe_job_status_reads_total",
			Help: "Job status reads by resulting status.",
		}, []string{"status"}),
		Summarizations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "speechscribe_summarizations_total",
			Help: "Summarization calls by outcome.",
		}, []string{"outcome"}),
	}
}
