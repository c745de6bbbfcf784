package observability

import "context"

// AddLoadMetric sends metrics about completed or rejected loads.
func AddLoadMetric(ctx context.Context, metric ...map[string]interface{}) {
	sender, ok := getSenderFromContext(ctx)
	if !ok {
		return
	}

	sender.AddDistinctMetrics(loadMetricType, metric...)
}

// AddStaleMetric sends metrics about ready signals of abandoned attempts.
func AddStaleMetric(ctx context.Context, metric ...map[string]interface{}) {
	sender, ok := getSenderFromContext(ctx)
	if !ok {
		return
	}

	sender.AddDistinctMetrics(staleMetricType, metric...)
}
