// Package metrics records validation counters and latencies.
//
// Recorder is the hook used by the records service. NoopRecorder is the
// default; PrometheusRecorder exports the validkit_* series and Handler
// serves them on /metrics.
package metrics
