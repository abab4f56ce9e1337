package records_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/model"
	"github.com/dmitrymomot/validkit/svc/records"
)

type fakeRecorder struct {
	mu         sync.Mutex
	results    map[metrics.Result]int
	violations map[string]int
	modes      []string
	batches    []int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{results: map[metrics.Result]int{}, violations: map[string]int{}}
}

func (f *fakeRecorder) IncRecords(r metrics.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[r]++
}

func (f *fakeRecorder) AddViolations(field string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.violations[field] += n
}

func (f *fakeRecorder) ObserveValidationDuration(mode string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modes = append(f.modes, mode)
}

func (f *fakeRecorder) ObserveBatchSize(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, n)
}

var (
	validRecord   = model.New("The Number of the Beast", 666, []model.Item{{FloatParameter: 1}})
	emptyList     = model.New("invallid basic model", 1, nil)
	zeroAndEmpty  = model.New("invallid basic model", 0, nil)
	badCharacters = model.New("R2D2", 1, []model.Item{{}})
)

func TestService_Validate(t *testing.T) {
	t.Parallel()

	for _, concurrent := range []bool{false, true} {
		svc := records.NewService(records.WithConcurrentChecks(concurrent))

		res, err := svc.Validate(context.Background(), validRecord)
		require.NoError(t, err)
		assert.Equal(t, "Valid(The Number of the Beast 666 1)", res.String())

		res, err = svc.Validate(context.Background(), zeroAndEmpty)
		require.NoError(t, err)
		assert.Equal(t, "Invalid(List(Integer must be greater than 0, List must be not empty))", res.String())
	}
}

func TestService_Check(t *testing.T) {
	t.Parallel()

	rec := newFakeRecorder()
	buf := &bytes.Buffer{}
	svc := records.NewService(
		records.WithRecorder(rec),
		records.WithLogger(logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))),
	)

	res, err := svc.Check(context.Background(), zeroAndEmpty)
	require.NoError(t, err)
	assert.False(t, res.Valid())
	assert.Equal(t, []string{model.FieldIntegerParameter, model.FieldListParameter}, res.Violations.Fields())

	res, err = svc.Check(context.Background(), validRecord)
	require.NoError(t, err)
	assert.True(t, res.Valid())
	assert.Nil(t, res.Violations)

	assert.Equal(t, 1, rec.results[metrics.ResultValid])
	assert.Equal(t, 1, rec.results[metrics.ResultInvalid])
	assert.Equal(t, map[string]int{model.FieldIntegerParameter: 1, model.FieldListParameter: 1}, rec.violations)
	assert.Equal(t, []string{"sequential", "sequential"}, rec.modes)

	out := buf.String()
	assert.Contains(t, out, "record rejected")
	assert.Contains(t, out, "component=records")
	assert.NotContains(t, out, "record valid")
}

func TestService_CheckViolationsMatchOutcome(t *testing.T) {
	t.Parallel()

	for _, concurrent := range []bool{false, true} {
		rec := newFakeRecorder()
		svc := records.NewService(records.WithRecorder(rec), records.WithConcurrentChecks(concurrent))

		for _, b := range []model.Basic{emptyList, zeroAndEmpty, badCharacters} {
			res, err := svc.Check(context.Background(), b)
			require.NoError(t, err)
			assert.Equal(t, res.Outcome.UnwrapErrors(), res.Violations.Messages())
		}

		assert.Equal(t, map[string]int{
			model.FieldStringParameter:  1,
			model.FieldIntegerParameter: 1,
			model.FieldListParameter:    2,
		}, rec.violations)
	}
}

func TestService_CheckCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := records.NewService(records.WithConcurrentChecks(true))

	_, err := svc.Check(ctx, zeroAndEmpty)

	assert.ErrorIs(t, err, records.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_ValidateAll(t *testing.T) {
	t.Parallel()

	rec := newFakeRecorder()
	svc := records.NewService(records.WithRecorder(rec), records.WithConcurrency(2), records.WithConcurrentChecks(true))
	input := []model.Basic{validRecord, emptyList, zeroAndEmpty, badCharacters, validRecord}

	batch, err := svc.ValidateAll(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, batch.RunID)
	assert.Equal(t, 2, batch.Valid)
	assert.Equal(t, 3, batch.Invalid)
	require.Len(t, batch.Results, len(input))

	rendered := make([]string, len(batch.Results))
	for i, res := range batch.Results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, input[i], res.Record)
		rendered[i] = res.Outcome.String()
	}
	assert.Equal(t, []string{
		"Valid(The Number of the Beast 666 1)",
		"Invalid(List(List must be not empty))",
		"Invalid(List(Integer must be greater than 0, List must be not empty))",
		"Invalid(List(Invalid characters in stringParameter: 22))",
		"Valid(The Number of the Beast 666 1)",
	}, rendered)
	assert.Equal(t, []int{5}, rec.batches)

	other, err := svc.ValidateAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, other.Results)
	assert.NotEqual(t, batch.RunID, other.RunID)
}

func TestService_ValidateAllCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := records.NewService().ValidateAll(ctx, []model.Basic{validRecord})
	assert.ErrorIs(t, err, records.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeRecords(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		doc := `
- string_parameter: The Number of the Beast
  integer_parameter: 666
  list_parameter:
    - float_parameter: 0.5
- string_parameter: invallid basic model
  integer_parameter: 0
`
		got, err := records.DecodeRecords(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, model.New("The Number of the Beast", 666, []model.Item{{FloatParameter: 0.5}}), got[0])
		assert.Nil(t, got[1].ListParameter)
	})

	t.Run("json", func(t *testing.T) {
		got, err := records.DecodeRecords(strings.NewReader(`[{"string_parameter":"a","integer_parameter":1,"list_parameter":[]}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a 1 0", got[0].String())
	})

	t.Run("empty", func(t *testing.T) {
		got, err := records.DecodeRecords(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := records.DecodeRecords(strings.NewReader("integer_parameter: [oops"))
		assert.ErrorIs(t, err, records.ErrDecode)
	})
}
