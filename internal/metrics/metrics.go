package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	BlogOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_operations_total",
			Help: "Successful admin blog mutations",
		},
		[]string{"action"}, // create|update|delete
	)

	ContactEmailsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_emails_total",
			Help: "Contact emails delivered",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(BlogOpsTotal)
	prometheus.MustRegister(ContactEmailsTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
