// Package metrics forwards pipeline stage metrics to Redis.
package metrics

import (
	"encoding/json"
	"log/slog"

	"github.com/satyaprakashdhfm/news-categorize/db"
	"github.com/satyaprakashdhfm/news-categorize/internal/enrich"
)

// RedisSink keeps the latest pipeline stage metrics in a capped Redis list.
// Failures are logged and dropped; metrics never block enrichment.
type RedisSink struct{}

func NewRedisSink() *RedisSink {
	return &RedisSink{}
}

func (s *RedisSink) Record(m enrich.StageMetric) {
	data, err := json.Marshal(m)
	if err != nil {
		slog.Warn("stage metric marshal failed", "stage", m.Stage, "error", err)
		return
	}

	if err := db.PushMetric(db.StageMetricsKey, string(data)); err != nil {
		slog.Warn("stage metric push failed", "stage", m.Stage, "error", err)
	}
}
