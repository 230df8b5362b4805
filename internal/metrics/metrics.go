package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the evaluation engine.
type Metrics struct {
	// HTTP request latencies by method, route template and status
	RequestLatency *prometheus.HistogramVec

	// Rubric reads served from cache vs. the database
	RubricCacheLookups *prometheus.CounterVec

	// Evaluation lifecycle events: created, deleted, scored
	EvaluationEvents *prometheus.CounterVec

	// Recommendations set, by value
	Recommendations *prometheus.CounterVec

	// Distribution of calculated total scores (0-100)
	TotalScore prometheus.Histogram

	// Cascading rubric deletes, by rubric kind
	RubricDeletes *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg. Passing a fresh
// prometheus.NewRegistry() keeps tests isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "interview_eval_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),

		RubricCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "interview_eval_rubric_cache_lookups_total",
			Help: "Rubric cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"

		EvaluationEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "interview_eval_evaluation_events_total",
			Help: "Evaluation lifecycle events by kind",
		}, []string{"event"}),

		Recommendations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "interview_eval_recommendations_total",
			Help: "Recommendations recorded by value",
		}, []string{"recommendation"}),

		TotalScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "interview_eval_total_score",
			Help:    "Calculated evaluation total scores",
			Buckets: []float64{20, 40, 60, 70, 80, 90, 100},
		}),

		RubricDeletes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "interview_eval_rubric_deletes_total",
			Help: "Confirmed cascading rubric deletes by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.RubricCacheLookups.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncrementEvaluationEvent(event string) {
	if m != nil {
		m.EvaluationEvents.WithLabelValues(event).Inc()
	}
}

func (m *Metrics) IncrementRecommendation(recommendation string) {
	if m != nil {
		m.Recommendations.WithLabelValues(recommendation).Inc()
	}
}

// ObserveTotalScore records a freshly calculated total score.
func (m *Metrics) ObserveTotalScore(score float64) {
	if m != nil {
		m.TotalScore.Observe(score)
	}
}

func (m *Metrics) IncrementRubricDelete(kind string) {
	if m != nil {
		m.RubricDeletes.WithLabelValues(kind).Inc()
	}
}

// Middleware records request latency under the matched route template, so
// path parameters do not explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
