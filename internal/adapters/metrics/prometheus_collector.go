package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "fantasy_manager"
	// Subsystem for command pipeline metrics
	subsystem = "bot"
	// Subsystem for transfer queue metrics
	transferSubsystem = "transfers"
)

// Reasons a transfer mutation can be rejected
const (
	RejectReasonCapacity = "capacity"
	RejectReasonPriority = "priority"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalTransferCollector is the singleton transfer metrics collector
	// Set by SetGlobalTransferCollector() when metrics are enabled
	globalTransferCollector TransferMetricsRecorder
)

// TransferMetricsRecorder defines the interface for recording transfer queue events
// This interface is used by application code to record metrics
type TransferMetricsRecorder interface {
	RecordTransferCreated(managerID int, depth int)
	RecordTransferAborted(managerID int, depth int)
	RecordTransferRejected(reason string)
	SetQueueDepth(managerID int, depth int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Handler serves the global registry in the Prometheus exposition format.
// Returns 404 for every request while metrics are disabled.
func Handler() http.Handler {
	if Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// SetGlobalTransferCollector sets the global transfer metrics collector
// This should be called after the collector is created and registered
func SetGlobalTransferCollector(collector TransferMetricsRecorder) {
	globalTransferCollector = collector
}

// RecordTransferCreated records a transfer request added to a queue globally
func RecordTransferCreated(managerID int, depth int) {
	if globalTransferCollector != nil {
		globalTransferCollector.RecordTransferCreated(managerID, depth)
	}
}

// RecordTransferAborted records a transfer request removed from a queue globally
func RecordTransferAborted(managerID int, depth int) {
	if globalTransferCollector != nil {
		globalTransferCollector.RecordTransferAborted(managerID, depth)
	}
}

// RecordTransferRejected records a refused queue mutation globally
func RecordTransferRejected(reason string) {
	if globalTransferCollector != nil {
		globalTransferCollector.RecordTransferRejected(reason)
	}
}

// SetQueueDepth overwrites the pending request gauge of one manager globally
func SetQueueDepth(managerID int, depth int) {
	if globalTransferCollector != nil {
		globalTransferCollector.SetQueueDepth(managerID, depth)
	}
}
