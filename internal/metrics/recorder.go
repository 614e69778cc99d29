// Package metrics provides observability hooks for index synthesis runs.
// Components receive a Recorder through dependency injection; the default
// NoopRecorder makes metrics collection optional with zero overhead.
package metrics

import "time"

// Recorder defines observability hooks for synthesis metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|failed
	SetDocumentsParsed(n int)
	SetIndexPagesGenerated(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(string)             {}
func (NoopRecorder) SetDocumentsParsed(int)             {}
func (NoopRecorder) SetIndexPagesGenerated(int)         {}
