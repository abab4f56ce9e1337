package records

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/model"
	"github.com/dmitrymomot/validkit/pkg/outcome"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

const (
	modeSequential = "sequential"
	modeConcurrent = "concurrent"
)

// Result is the validation of one record.
type Result struct {
	Index   int
	Record  model.Basic
	Outcome outcome.Outcome[string, model.Basic]
	// Violations holds the failing fields of an invalid record; nil when valid.
	Violations validator.ValidationErrors
}

func (r Result) Valid() bool {
	return r.Outcome.IsValid()
}

// Batch is the validation of a list of records, in input order.
type Batch struct {
	RunID   uuid.UUID
	Results []Result
	Valid   int
	Invalid int
}

// Service validates model.Basic records and reports each one to its logger
// and metrics recorder.
type Service struct {
	log         *slog.Logger
	recorder    metrics.Recorder
	concurrent  bool
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithConcurrentChecks evaluates the field checks of each record in parallel.
func WithConcurrentChecks(enabled bool) Option {
	return func(s *Service) { s.concurrent = enabled }
}

// WithConcurrency limits how many records of a batch are validated at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		log:         logger.Discard(),
		recorder:    metrics.NoopRecorder{},
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("records"))
	return s
}

// Validate validates one record. The error is non-nil only if ctx ends
// before the checks complete.
func (s *Service) Validate(ctx context.Context, b model.Basic) (outcome.Outcome[string, model.Basic], error) {
	res, err := s.Check(ctx, b)
	if err != nil {
		return outcome.Outcome[string, model.Basic]{}, err
	}
	return res.Outcome, nil
}

// Check validates one record and attributes every violation to its field.
func (s *Service) Check(ctx context.Context, b model.Basic) (Result, error) {
	start := time.Now()

	mode := modeSequential
	var (
		res        outcome.Outcome[string, model.Basic]
		violations validator.ValidationErrors
	)
	if s.concurrent {
		mode = modeConcurrent
		var err error
		if res, violations, err = model.EvaluateConcurrent(ctx, b); err != nil {
			return Result{}, errors.Join(ErrCanceled, err)
		}
	} else {
		res, violations = model.Evaluate(b)
	}

	elapsed := time.Since(start)
	result := Result{Record: b, Outcome: res, Violations: violations}

	s.recorder.ObserveValidationDuration(mode, elapsed)
	s.recorder.IncRecords(metrics.ResultOf(res.IsValid()))

	if res.IsValid() {
		s.log.DebugContext(ctx, "record valid",
			logger.Record(res.Get()),
			logger.Duration(elapsed),
		)
		return result, nil
	}

	for field, msgs := range result.Violations.Details() {
		s.recorder.AddViolations(field, len(msgs))
	}

	s.log.InfoContext(ctx, "record rejected",
		logger.Record(b),
		logger.Violations(res.UnwrapErrors()),
		logger.FieldCount(len(result.Violations.Fields())),
		logger.Duration(elapsed),
	)
	return result, nil
}

// ValidateAll validates records with bounded parallelism and returns the
// results in input order under a fresh run id.
func (s *Service) ValidateAll(ctx context.Context, records []model.Basic) (Batch, error) {
	batch := Batch{
		RunID:   uuid.New(),
		Results: make([]Result, len(records)),
	}
	log := s.log.With(logger.RunID(batch.RunID))
	s.recorder.ObserveBatchSize(len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Join(ErrCanceled, err)
			}
			res, err := s.Check(gctx, rec)
			if err != nil {
				return err
			}
			res.Index = i
			batch.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WarnContext(ctx, "batch aborted", logger.Error(err))
		return Batch{}, err
	}

	for _, res := range batch.Results {
		if res.Valid() {
			batch.Valid++
		} else {
			batch.Invalid++
		}
	}

	log.InfoContext(ctx, "batch validated",
		logger.Event("batch_validated"),
		slog.Int("valid", batch.Valid),
		slog.Int("invalid", batch.Invalid),
	)
	return batch, nil
}
