package metrics

import "time"

// Result labels a validated record.
type Result string

const (
	ResultValid   Result = "valid"
	ResultInvalid Result = "invalid"
)

// ResultOf maps the validity of a record to its label.
func ResultOf(valid bool) Result {
	if valid {
		return ResultValid
	}
	return ResultInvalid
}

// Recorder receives validation metrics. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// IncRecords counts one validated record by result.
	IncRecords(result Result)
	// AddViolations counts the violation messages reported for one field.
	AddViolations(field string, n int)
	ObserveValidationDuration(mode string, d time.Duration)
	ObserveBatchSize(n int)
}

// NoopRecorder discards everything. It is the default when metrics are not configured.
type NoopRecorder struct{}

func (NoopRecorder) IncRecords(Result)                              {}
func (NoopRecorder) AddViolations(string, int)                      {}
func (NoopRecorder) ObserveValidationDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBatchSize(int)                           {}
