package enrich

import "time"

// StageMetric is an observability record for one provider call. Sinks are
// informed after the stage has already resolved; they never influence
// pipeline outcomes.
type StageMetric struct {
	Stage    string        `json:"stage"`
	Model    string        `json:"model"`
	Duration time.Duration `json:"duration_ns"`
	Failed   bool          `json:"failed"`
	At       time.Time     `json:"at"`
}

type MetricSink interface {
	Record(m StageMetric)
}
