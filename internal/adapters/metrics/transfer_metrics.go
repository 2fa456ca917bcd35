package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// TransferMetricsCollector handles all transfer queue metrics
type TransferMetricsCollector struct {
	transfersCreated  *prometheus.CounterVec
	transfersAborted  *prometheus.CounterVec
	transfersRejected *prometheus.CounterVec
	queueDepth        *prometheus.GaugeVec
}

// NewTransferMetricsCollector creates a new transfer metrics collector
func NewTransferMetricsCollector() *TransferMetricsCollector {
	return &TransferMetricsCollector{
		transfersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: transferSubsystem,
				Name:      "created_total",
				Help:      "Total number of transfer requests added to a queue",
			},
			[]string{"manager_id"},
		),

		transfersAborted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: transferSubsystem,
				Name:      "aborted_total",
				Help:      "Total number of transfer requests aborted by their manager",
			},
			[]string{"manager_id"},
		),

		transfersRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: transferSubsystem,
				Name:      "rejected_total",
				Help:      "Total number of refused queue mutations by reason",
			},
			[]string{"reason"},
		),

		// Pending requests per manager after the last mutation
		queueDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: transferSubsystem,
				Name:      "queue_depth",
				Help:      "Number of pending transfer requests per manager",
			},
			[]string{"manager_id"},
		),
	}
}

// Register registers all transfer metrics with the Prometheus registry
func (c *TransferMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.transfersCreated,
		c.transfersAborted,
		c.transfersRejected,
		c.queueDepth,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

func (c *TransferMetricsCollector) RecordTransferCreated(managerID int, depth int) {
	label := strconv.Itoa(managerID)
	c.transfersCreated.WithLabelValues(label).Inc()
	c.queueDepth.WithLabelValues(label).Set(float64(depth))
}

func (c *TransferMetricsCollector) RecordTransferAborted(managerID int, depth int) {
	label := strconv.Itoa(managerID)
	c.transfersAborted.WithLabelValues(label).Inc()
	c.queueDepth.WithLabelValues(label).Set(float64(depth))
}

func (c *TransferMetricsCollector) RecordTransferRejected(reason string) {
	c.transfersRejected.WithLabelValues(reason).Inc()
}

// SetQueueDepth sets the gauge without counting an event, for periodic sampling
func (c *TransferMetricsCollector) SetQueueDepth(managerID int, depth int) {
	c.queueDepth.WithLabelValues(strconv.Itoa(managerID)).Set(float64(depth))
}

var _ TransferMetricsRecorder = (*TransferMetricsCollector)(nil)
