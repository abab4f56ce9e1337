package either_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/either"
)

func TestEither(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad")

	t.Run("right", func(t *testing.T) {
		e := either.Right[error](6)
		assert.True(t, e.IsRight())
		assert.False(t, e.IsLeft())
		assert.Equal(t, 6, e.Get())
		assert.Equal(t, 6, e.GetOrElse(0))
		assert.Equal(t, "Right(6)", e.String())
		assert.PanicsWithValue(t, either.ErrNotLeft, func() { e.GetLeft() })
	})

	t.Run("left", func(t *testing.T) {
		e := either.Left[error, int](errBad)
		assert.True(t, e.IsLeft())
		assert.Equal(t, errBad, e.GetLeft())
		assert.Equal(t, -1, e.GetOrElse(-1))
		assert.Equal(t, "Left(bad)", e.String())

		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, either.ErrNotRight)
		}()
		e.Get()
	})

	t.Run("swap", func(t *testing.T) {
		swapped := either.Right[string](1).Swap()
		assert.True(t, swapped.IsLeft())
		assert.Equal(t, 1, swapped.GetLeft())
	})

	t.Run("map is right biased", func(t *testing.T) {
		upper := either.Map(either.Right[int]("abc"), strings.ToUpper)
		assert.Equal(t, "ABC", upper.Get())

		left := either.Map(either.Left[int, string](7), strings.ToUpper)
		assert.Equal(t, 7, left.GetLeft())

		relabeled := either.MapLeft(either.Left[error, int](errBad), func(err error) string { return "wrapped: " + err.Error() })
		assert.Equal(t, "Left(wrapped: bad)", relabeled.String())
	})

	t.Run("fold", func(t *testing.T) {
		describe := func(e either.Either[error, int]) string {
			return either.Fold(e, func(err error) string { return err.Error() }, func(int) string { return "ok" })
		}
		assert.Equal(t, "ok", describe(either.Right[error](1)))
		assert.Equal(t, "bad", describe(either.Left[error, int](errBad)))
	})
}
