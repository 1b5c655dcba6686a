package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageErrors counts durable-storage failures by backend and operation.
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reentrybuddy_storage_errors_total",
		Help: "Total number of storage errors by backend and operation",
	}, []string{"backend", "operation"})

	// CheckInsCreated counts successfully persisted check-ins.
	CheckInsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reentrybuddy_checkins_created_total",
		Help: "Total number of check-ins created",
	})
)

var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
// It registers against the default registry so the counters above are served
// from the same /metrics endpoint as the HTTP metrics. The default registry
// rejects duplicate collectors, so repeated calls return the shared instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.NewWithDefaultRegistry(serviceName)
	})
	return promMiddleware
}
