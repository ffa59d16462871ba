package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "limelight_command_runs_total",
		Help: "Total CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "limelight_command_errors_total",
		Help: "Total CLI command failures",
	}, []string{"command"})
	SearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limelight_search_requests_total",
		Help: "Total recent-search HTTP requests issued",
	})
	SearchPages = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limelight_search_pages_total",
		Help: "Total result pages fetched",
	})
	RateLimitHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limelight_rate_limit_hits_total",
		Help: "Total 429 responses that triggered a cooldown",
	})
	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "limelight_run_duration_seconds",
		Help:    "End-to-end duration of a scan run",
		Buckets: prometheus.DefBuckets,
	})
	ScoredTiers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "limelight_scored_tier_total",
		Help: "Influencers scored, by recommendation tier",
	}, []string{"tier"})
)

func init() {
	prometheus.MustRegister(CommandRuns, CommandErrors, SearchRequests, SearchPages, RateLimitHits, RunDuration, ScoredTiers)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
// No-op when addr is empty.
func StartServer(addr string) {
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// IncCommandRun counts one invocation of a CLI command.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError counts one failed invocation.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }

// ObserveRunDuration records a run duration from its start time.
func ObserveRunDuration(start time.Time) { RunDuration.Observe(time.Since(start).Seconds()) }

// IncTier counts a scored influencer by tier label.
func IncTier(tier string) { ScoredTiers.WithLabelValues(tier).Inc() }
