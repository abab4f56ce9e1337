package validator_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/outcome"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

type account struct {
	Name  string
	Age   int
	Roles []string
}

type accountFields struct {
	name  *validator.Field[string]
	age   *validator.Field[int]
	roles *validator.Field[[]string]
}

func declareAccount(in account) accountFields {
	return accountFields{
		name:  validator.NewField("name", in.Name, validator.LettersAndSpaces("name")),
		age:   validator.NewField("age", in.Age, validator.Positive[int]()),
		roles: validator.NewField("roles", in.Roles, validator.RequiredSlice[string]()),
	}
}

func (f accountFields) list() []validator.Checker {
	return []validator.Checker{f.name, f.age, f.roles}
}

func (f accountFields) build(v validator.Values) account {
	return account{
		Name:  validator.Get(v, f.name),
		Age:   validator.Get(v, f.age),
		Roles: validator.Get(v, f.roles),
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		in := account{Name: "Ada Lovelace", Age: 36, Roles: []string{"admin"}}
		f := declareAccount(in)

		res := validator.Validate(f.list(), f.build)

		require.True(t, res.IsValid())
		assert.Equal(t, in, res.Get())
	})

	t.Run("accumulates every failure in declared order", func(t *testing.T) {
		f := declareAccount(account{Name: "R2D2", Age: 0})

		res := validator.Validate(f.list(), f.build)

		require.True(t, res.IsInvalid())
		want := []string{"Invalid characters in name: 22", "must be greater than 0", "field is required"}
		if diff := cmp.Diff(want, res.UnwrapErrors()); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("order follows declaration not evaluation cost", func(t *testing.T) {
		f := declareAccount(account{Name: "R2D2", Age: 0})
		reordered := []validator.Checker{f.roles, f.age, f.name}

		res := validator.Validate(reordered, f.build)

		assert.Equal(t, []string{"field is required", "must be greater than 0", "Invalid characters in name: 22"}, res.UnwrapErrors())
	})

	t.Run("reconstruct is not called on failure", func(t *testing.T) {
		f := declareAccount(account{Name: "ok", Age: -1, Roles: []string{"x"}})
		called := false

		res := validator.Validate(f.list(), func(v validator.Values) account {
			called = true
			return f.build(v)
		})

		assert.True(t, res.IsInvalid())
		assert.False(t, called)
	})

	t.Run("reconstruct is called once on success", func(t *testing.T) {
		f := declareAccount(account{Name: "ok", Age: 1, Roles: []string{"x"}})
		calls := 0

		res := validator.Validate(f.list(), func(v validator.Values) account {
			calls++
			return f.build(v)
		})

		assert.True(t, res.IsValid())
		assert.Equal(t, 1, calls)
	})

	t.Run("deterministic", func(t *testing.T) {
		f := declareAccount(account{Name: "a-b", Age: -3})

		first := validator.Validate(f.list(), f.build)
		second := validator.Validate(f.list(), f.build)

		assert.Equal(t, first.String(), second.String())
	})

	t.Run("values in declared order", func(t *testing.T) {
		f := declareAccount(account{Name: "x", Age: 2, Roles: []string{"r"}})

		res := validator.Validate(f.list(), func(v validator.Values) []any {
			assert.Equal(t, 3, v.Len())
			assert.Equal(t, 2, v.At(1))
			return v.All()
		})

		assert.Equal(t, []any{"x", 2, []string{"r"}}, res.Get())
	})
}

func TestValidate_Misuse(t *testing.T) {
	t.Parallel()

	t.Run("no fields", func(t *testing.T) {
		assert.PanicsWithValue(t, validator.ErrNoFields, func() {
			validator.Validate(nil, func(validator.Values) int { return 0 })
		})
	})

	t.Run("nil reconstruct", func(t *testing.T) {
		f := declareAccount(account{})
		assert.PanicsWithValue(t, validator.ErrNilReconstruct, func() {
			validator.Validate[account](f.list(), nil)
		})
	})

	t.Run("nil check", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.NewField[string]("name", "x", nil)
		})
	})

	t.Run("unknown field", func(t *testing.T) {
		f := declareAccount(account{Name: "x", Age: 1, Roles: []string{"r"}})
		stray := validator.NewField("stray", 1, validator.Positive[int]())

		assert.Panics(t, func() {
			validator.Validate(f.list(), func(v validator.Values) int {
				return validator.Get(v, stray)
			})
		})
	})
}

func TestValidateConcurrent(t *testing.T) {
	t.Parallel()

	inputs := []account{
		{Name: "Ada", Age: 36, Roles: []string{"admin"}},
		{Name: "R2D2", Age: 0},
		{Name: "", Age: -1, Roles: []string{}},
		{Name: "Grace Hopper", Age: 85},
	}

	for _, in := range inputs {
		f := declareAccount(in)

		sequential := validator.Validate(f.list(), f.build)
		concurrent, err := validator.ValidateConcurrent(context.Background(), f.list(), f.build)

		require.NoError(t, err)
		assert.Equal(t, sequential.String(), concurrent.String())
		assert.Equal(t, sequential.IsValid(), concurrent.IsValid())
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f := declareAccount(inputs[0])

		_, err := validator.ValidateConcurrent(ctx, f.list(), f.build)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		in := account{Name: "Ada", Age: 36, Roles: []string{"admin"}}
		f := declareAccount(in)

		got, err := validator.Report(f.list(), f.build)

		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("invalid carries field names", func(t *testing.T) {
		f := declareAccount(account{Name: "Ada", Age: 0})

		got, err := validator.Report(f.list(), f.build)

		require.Error(t, err)
		assert.Zero(t, got)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"age", "roles"}, errs.Fields())
		assert.Equal(t, []string{"must be greater than 0", "field is required"}, errs.Messages())
	})
}

func countingCheck[T any](calls *atomic.Int32, check validator.FieldCheck[T]) validator.FieldCheck[T] {
	return func(v T) outcome.Outcome[string, T] {
		calls.Add(1)
		return check(v)
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	evaluators := map[string]func([]validator.Checker, func(validator.Values) account) (outcome.Outcome[string, account], validator.ValidationErrors){
		"sequential": validator.Evaluate[account],
		"concurrent": func(fields []validator.Checker, build func(validator.Values) account) (outcome.Outcome[string, account], validator.ValidationErrors) {
			res, errs, err := validator.EvaluateConcurrent(context.Background(), fields, build)
			require.NoError(t, err)
			return res, errs
		},
	}

	for mode, evaluate := range evaluators {
		t.Run(mode+" runs each check once", func(t *testing.T) {
			var nameCalls, ageCalls, rolesCalls atomic.Int32
			in := account{Name: "R2D2", Age: 0}
			name := validator.NewField("name", in.Name, countingCheck(&nameCalls, validator.LettersAndSpaces("name")))
			age := validator.NewField("age", in.Age, countingCheck(&ageCalls, validator.Positive[int]()))
			roles := validator.NewField("roles", in.Roles, countingCheck(&rolesCalls, validator.RequiredSlice[string]()))

			res, errs := evaluate([]validator.Checker{name, age, roles}, func(v validator.Values) account {
				return account{Name: validator.Get(v, name), Age: validator.Get(v, age), Roles: validator.Get(v, roles)}
			})

			assert.Equal(t, int32(1), nameCalls.Load())
			assert.Equal(t, int32(1), ageCalls.Load())
			assert.Equal(t, int32(1), rolesCalls.Load())

			require.True(t, res.IsInvalid())
			assert.Equal(t, res.UnwrapErrors(), errs.Messages())
			assert.Equal(t, []string{"name", "age", "roles"}, errs.Fields())
		})

		t.Run(mode+" valid has no violations", func(t *testing.T) {
			in := account{Name: "Ada", Age: 36, Roles: []string{"admin"}}
			f := declareAccount(in)

			res, errs := evaluate(f.list(), f.build)

			require.True(t, res.IsValid())
			assert.Equal(t, in, res.Get())
			assert.True(t, errs.IsEmpty())
		})
	}

	t.Run("concurrent cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f := declareAccount(account{})

		_, errs, err := validator.EvaluateConcurrent(ctx, f.list(), f.build)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, errs)
	})
}
