package logger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// buildLogEntry wraps one line in a Loki push payload.
func buildLogEntry(job, level, message string, attrs []slog.Attr, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"streams": []map[string]interface{}{
			{
				"stream": map[string]string{
					"level": level,
					"job":   job,
				},
				"values": [][]string{
					{
						fmt.Sprintf("%d", now.UnixNano()),
						buildLogLine(level, message, attrs, now),
					},
				},
			},
		},
	}
}

func buildLogLine(level, message string, attrs []slog.Attr, now time.Time) string {
	logData := map[string]interface{}{
		"level":   level,
		"message": message,
		"time":    now.Format(time.RFC3339),
	}

	for _, attr := range attrs {
		logData[attr.Key] = attr.Value.Any()
	}

	jsonBytes, _ := json.Marshal(logData)
	return string(jsonBytes)
}
