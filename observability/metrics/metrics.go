package metrics

import (
	"time"

	"github.com/ProtonMail/sceneprobe/rating"
)

const (
	loadSchemaName  = "sceneprobe_scene_load_total"
	eventSchemaName = "sceneprobe_events_total"
	schemaVersion   = 1
)

func generate(schema string, labels map[string]string) map[string]interface{} {
	return map[string]interface{}{
		"Name":      schema,
		"Version":   schemaVersion,
		"Timestamp": time.Now().Unix(),
		"Data": map[string]interface{}{
			"Value":  1,
			"Labels": labels,
		},
	}
}

// GenerateSceneLoadedMetric labels a completed load by its speed bucket only; references and exact
// durations are not sent.
func GenerateSceneLoadedMetric(total time.Duration) map[string]interface{} {
	return generate(loadSchemaName, map[string]string{
		"result": "loaded",
		"speed":  rating.SpeedRating(total, true).Label,
	})
}

func GenerateLoadRejectedMetric() map[string]interface{} {
	return generate(loadSchemaName, map[string]string{
		"result": "rejected",
	})
}

func GenerateStaleReadyMetric() map[string]interface{} {
	return generate(eventSchemaName, map[string]string{
		"eventType": "staleReadyIgnored",
	})
}

func GenerateLoadSupersededMetric() map[string]interface{} {
	return generate(eventSchemaName, map[string]string{
		"eventType": "loadSuperseded",
	})
}
