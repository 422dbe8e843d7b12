// Package telemetry exports tail run metrics to Prometheus.
package telemetry

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/logging"
)

// Metrics implements emitter.Recorder.
type Metrics struct {
	Polls         *prometheus.CounterVec
	PolledRecords *prometheus.CounterVec
	PolledBytes   *prometheus.CounterVec
	PollDuration  *prometheus.HistogramVec
	ThrottleDelay *prometheus.HistogramVec
	Runs          *prometheus.CounterVec
	Messages      *prometheus.CounterVec
	Filtered      *prometheus.CounterVec
	Skipped       *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	SinkErrors    *prometheus.CounterVec
}

var _ emitter.Recorder = (*Metrics)(nil)

// NewMetrics creates and registers every tail metric on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Polls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_polls_total",
			Help: "Polls issued by tail runs.",
		}, []string{"direction"}),

		PolledRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_polled_records_total",
			Help: "Records returned by polls, before range and filter checks.",
		}, []string{"direction"}),

		PolledBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_polled_bytes_total",
			Help: "Key, value and header bytes returned by polls.",
		}, []string{"direction"}),

		PollDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kui_tail_poll_duration_seconds",
			Help:    "Time spent inside a single poll.",
			Buckets: prometheus.DefBuckets,
		}, []string{"direction"}),

		ThrottleDelay: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kui_tail_throttle_delay_seconds",
			Help:    "Delay imposed by the byte-rate throttle before a poll.",
			Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"direction"}),

		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_runs_total",
			Help: "Finished tail runs by outcome and stop reason.",
		}, []string{"direction", "outcome", "reason"}),

		Messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_messages_total",
			Help: "Messages emitted to sinks.",
		}, []string{"direction"}),

		Filtered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_filtered_total",
			Help: "Records dropped by filters, split by whether the filter failed.",
		}, []string{"direction", "result"}),

		Skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_tail_skipped_total",
			Help: "Records that could not be decoded.",
		}, []string{"direction"}),

		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kui_tail_run_duration_seconds",
			Help:    "Wall time of a tail run.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"direction", "outcome"}),

		SinkErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kui_sink_errors_total",
			Help: "Events a sink failed to deliver.",
		}, []string{"sink"}),
	}
}

func (m *Metrics) ObservePoll(dir emitter.Direction, records, bytes int, took time.Duration) {
	d := string(dir)
	m.Polls.WithLabelValues(d).Inc()
	m.PolledRecords.WithLabelValues(d).Add(float64(records))
	m.PolledBytes.WithLabelValues(d).Add(float64(bytes))
	m.PollDuration.WithLabelValues(d).Observe(took.Seconds())
}

func (m *Metrics) ObserveThrottle(dir emitter.Direction, delay time.Duration) {
	m.ThrottleDelay.WithLabelValues(string(dir)).Observe(delay.Seconds())
}

func (m *Metrics) ObserveRun(dir emitter.Direction, outcome emitter.Outcome, s emitter.Summary) {
	d := string(dir)
	m.Runs.WithLabelValues(d, string(outcome), string(s.Reason)).Inc()
	m.Messages.WithLabelValues(d).Add(float64(s.Messages))
	m.Filtered.WithLabelValues(d, "no_match").Add(float64(s.Filtered))
	m.Filtered.WithLabelValues(d, "error").Add(float64(s.FilterErrors))
	m.Skipped.WithLabelValues(d).Add(float64(s.Skipped))
	m.RunDuration.WithLabelValues(d, string(outcome)).Observe(s.Elapsed.Seconds())
}

// Expose serves g on :port/metrics in the background. The caller shuts the
// returned server down.
func Expose(port int, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Error("metrics server stopped", "addr", srv.Addr, "err", err)
		}
	}()
	return srv
}
