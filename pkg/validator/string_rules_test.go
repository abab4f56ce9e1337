package validator_test

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	check := validator.RequiredString()

	assert.True(t, check("test@example.com").IsValid())
	assert.True(t, check("  John  ").IsValid())
	assert.Equal(t, []string{"field is required"}, check("").UnwrapErrors())
	assert.True(t, check("   ").IsInvalid())
}

func TestStringLength(t *testing.T) {
	t.Parallel()

	t.Run("min", func(t *testing.T) {
		check := validator.MinLen(5)
		assert.True(t, check("12345").IsValid())
		assert.Equal(t, []string{"must be at least 5 characters long"}, check("1234").UnwrapErrors())
	})

	t.Run("max", func(t *testing.T) {
		check := validator.MaxLen(3)
		assert.True(t, check("abc").IsValid())
		assert.Equal(t, []string{"must be at most 3 characters long"}, check("abcd").UnwrapErrors())
	})

	t.Run("exact", func(t *testing.T) {
		check := validator.Len(2)
		assert.True(t, check("ok").IsValid())
		assert.Equal(t, []string{"must be exactly 2 characters long"}, check("nope").UnwrapErrors())
	})

	t.Run("counts runes", func(t *testing.T) {
		assert.True(t, validator.MaxLen(4)("café").IsValid())
		assert.True(t, validator.Len(2)("日本").IsValid())
	})
}

func TestLettersAndSpaces(t *testing.T) {
	t.Parallel()

	check := validator.LettersAndSpaces("stringParameter")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "letters and spaces", input: "The Number of the Beast"},
		{name: "empty", input: ""},
		{name: "digits", input: "Agent 007", want: []string{"Invalid characters in stringParameter: 007"}},
		{name: "offending runes in order", input: "a-b_c!", want: []string{"Invalid characters in stringParameter: -_!"}},
		{name: "non ascii letters", input: "Zoë", want: []string{"Invalid characters in stringParameter: ë"}},
		{name: "invalid utf8 kept as bytes", input: "h\u00e9llo\xff", want: []string{"Invalid characters in stringParameter: \u00e9\xff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(tt.input)
			if tt.want == nil {
				assert.True(t, res.IsValid())
				assert.Equal(t, tt.input, res.Get())
				return
			}
			assert.Equal(t, tt.want, res.UnwrapErrors())
		})
	}
}

func TestAllowedChars(t *testing.T) {
	t.Parallel()

	digits := validator.AllowedChars("pin", func(r rune) bool { return r >= '0' && r <= '9' })

	assert.True(t, digits("0042").IsValid())
	assert.Equal(t, []string{"Invalid characters in pin: x "}, digits("12x 4").UnwrapErrors())

	t.Run("invalid utf8 is offending even if the replacement rune is allowed", func(t *testing.T) {
		lenient := validator.AllowedChars("s", func(r rune) bool { return r == utf8.RuneError || r == 'a' })

		assert.True(t, lenient("a\uFFFDa").IsValid())
		assert.Equal(t, []string{"Invalid characters in s: \x80\xfe"}, lenient("a\x80a\xfe").UnwrapErrors())
	})
}

func TestMatchesRegex(t *testing.T) {
	t.Parallel()

	check := validator.MatchesRegex(regexp.MustCompile(`^[a-z]+-\d+$`), "slug")

	assert.True(t, check("order-42").IsValid())
	assert.Equal(t, []string{"must match slug pattern"}, check("Order 42").UnwrapErrors())
	assert.True(t, check("  ").IsInvalid())
}

func TestNoWhitespace(t *testing.T) {
	t.Parallel()

	check := validator.NoWhitespace()

	assert.True(t, check("username").IsValid())
	assert.True(t, check("").IsValid())
	assert.Equal(t, []string{"must not contain whitespace characters"}, check("user name").UnwrapErrors())
	assert.True(t, check("tab\there").IsInvalid())
}
