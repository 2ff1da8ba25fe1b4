package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers the application's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	interviewsStarted   *prometheus.CounterVec
	interviewsCompleted prometheus.Counter
	aiFallbacks         prometheus.Counter
	resumesAnalyzed     prometheus.Counter
	resumesBuilt        prometheus.Counter
	aiLatency           prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		interviewsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resumecoach_interviews_started_total",
			Help: "Interview sessions started, labeled by question source.",
		}, []string{"mode"}),
		interviewsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resumecoach_interviews_completed_total",
			Help: "Interview sessions that reached the final turn.",
		}),
		aiFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resumecoach_ai_fallbacks_total",
			Help: "AI collaborator failures absorbed by the fallback path.",
		}),
		resumesAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resumecoach_resumes_analyzed_total",
			Help: "Uploaded resumes scored.",
		}),
		resumesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resumecoach_resumes_built_total",
			Help: "Resumes generated from builder data.",
		}),
		aiLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "resumecoach_ai_request_seconds",
			Help:    "Latency of completion API calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		c.interviewsStarted,
		c.interviewsCompleted,
		c.aiFallbacks,
		c.resumesAnalyzed,
		c.resumesBuilt,
		c.aiLatency,
	)
	return c
}

func (c *Collector) RecordInterviewStarted(usesAI bool) {
	mode := "bank"
	if usesAI {
		mode = "ai"
	}
	c.interviewsStarted.WithLabelValues(mode).Inc()
}

func (c *Collector) RecordInterviewCompleted() { c.interviewsCompleted.Inc() }

func (c *Collector) RecordAIFallback() { c.aiFallbacks.Inc() }

func (c *Collector) RecordResumeAnalyzed() { c.resumesAnalyzed.Inc() }

func (c *Collector) RecordResumeBuilt() { c.resumesBuilt.Inc() }

func (c *Collector) ObserveAILatency(d time.Duration) {
	c.aiLatency.Observe(d.Seconds())
}

// Handler exposes the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
