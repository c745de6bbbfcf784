// Package observability forwards probe metrics to an external sender found in the context.
package observability

var (
	loadMetricType  int
	staleMetricType int
)

type Sender interface {
	AddMetrics(metrics ...map[string]interface{})
	AddDistinctMetrics(metricType interface{}, metrics ...map[string]interface{})
}

// SetupMetricTypes assigns the type tags passed to Sender.AddDistinctMetrics.
func SetupMetricTypes(loadType, staleType int) {
	loadMetricType = loadType
	staleMetricType = staleType
}
