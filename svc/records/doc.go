// Package records validates model.Basic records for the CLI and the HTTP API.
//
// Service wraps model.Validate with logging and metrics, and ValidateAll
// validates a batch with bounded parallelism while keeping input order.
// Router exposes the service over HTTP with chi; DecodeRecords reads record
// files in YAML or JSON.
package records
