package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MutationAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_mutations_total",
		Help: "Optimistic mutations attempted, by action",
	}, []string{"action"})
	MutationRollbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_mutation_rollbacks_total",
		Help: "Optimistic mutations rolled back after a failed call, by action",
	}, []string{"action"})
	NotifyPolls = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "warbler_notify_polls_total",
		Help: "Unread-count poll runs",
	})
	NotifyPollErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "warbler_notify_poll_errors_total",
		Help: "Unread-count poll failures",
	})
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_api_requests_total",
		Help: "Backend requests, by operation and status class",
	}, []string{"op", "status"})
	APIDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "warbler_api_duration_seconds",
		Help:    "Backend request duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_command_runs_total",
		Help: "CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_command_errors_total",
		Help: "CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(
		MutationAttempts, MutationRollbacks,
		NotifyPolls, NotifyPollErrors,
		APIRequests, APIDuration,
		CommandRuns, CommandErrors,
	)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("WARBLER_METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveAPICall records one backend request.
func ObserveAPICall(op, statusClass string, start time.Time) {
	APIRequests.WithLabelValues(op, statusClass).Inc()
	APIDuration.Observe(time.Since(start).Seconds())
}

func IncMutation(action string)      { MutationAttempts.WithLabelValues(action).Inc() }
func IncRollback(action string)      { MutationRollbacks.WithLabelValues(action).Inc() }
func IncCommandRun(command string)   { CommandRuns.WithLabelValues(command).Inc() }
func IncCommandError(command string) { CommandErrors.WithLabelValues(command).Inc() }
