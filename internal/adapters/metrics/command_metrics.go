package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// Outcome labels of a handled request
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected" // the manager can correct the request
	StatusError    = "error"
)

// CommandMetricsCollector tracks how the mediator pipeline handles each request type
type CommandMetricsCollector struct {
	handleDuration *prometheus.HistogramVec
	requestsTotal  *prometheus.CounterVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		// Most requests are a couple of indexed queries; the top bucket catches lock waits
		handleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Time spent handling a command or query, including middleware",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"request", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Commands and queries handled, by request type and outcome",
			},
			[]string{"request", "status"},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.handleDuration, c.requestsTotal} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordRequest records one handled request and classifies its error
func (c *CommandMetricsCollector) RecordRequest(requestName string, seconds float64, err error) {
	status := requestStatus(err)
	c.handleDuration.WithLabelValues(requestName, status).Observe(seconds)
	c.requestsTotal.WithLabelValues(requestName, status).Inc()
}

// requestStatus separates user-correctable failures from infrastructure ones
func requestStatus(err error) string {
	if err == nil {
		return StatusSuccess
	}

	var (
		validation *shared.ValidationError
		notFound   *shared.NotFoundError
	)
	switch {
	case errors.Is(err, transfer.ErrCapacityExceeded),
		errors.Is(err, transfer.ErrInvalidPriority),
		errors.Is(err, league.ErrAlreadyInLeague),
		errors.Is(err, league.ErrNotInLeague),
		errors.Is(err, team.ErrTeamExists),
		errors.As(err, &validation),
		errors.As(err, &notFound):
		return StatusRejected
	}
	return StatusError
}
