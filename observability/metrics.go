package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newschat_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newschat_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	chatRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newschat_chat_requests_total",
			Help: "Chat requests by classified route and response type.",
		},
		[]string{"route", "type"},
	)

	sqlExecutionSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newschat_sql_execution_seconds",
			Help:    "Warehouse query latency by outcome.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	llmRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newschat_llm_requests_total",
			Help: "Generative model calls by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		chatRequestsTotal,
		sqlExecutionSeconds,
		llmRequestsTotal,
	)
}

func ObserveChat(route, responseType string) {
	chatRequestsTotal.WithLabelValues(route, responseType).Inc()
}

func ObserveSQLExecution(outcome string, elapsed time.Duration) {
	sqlExecutionSeconds.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func ObserveLLMRequest(provider string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	llmRequestsTotal.WithLabelValues(provider, outcome).Inc()
}
