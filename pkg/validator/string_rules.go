package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/validkit/pkg/outcome"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString() FieldCheck[string] {
	return Predicate(func(v string) bool {
		return strings.TrimSpace(v) != ""
	}, "field is required")
}

func MinLen(min int) FieldCheck[string] {
	return Predicate(func(v string) bool {
		return utf8.RuneCountInString(v) >= min
	}, fmt.Sprintf("must be at least %d characters long", min))
}

func MaxLen(max int) FieldCheck[string] {
	return Predicate(func(v string) bool {
		return utf8.RuneCountInString(v) <= max
	}, fmt.Sprintf("must be at most %d characters long", max))
}

func Len(exact int) FieldCheck[string] {
	return Predicate(func(v string) bool {
		return utf8.RuneCountInString(v) == exact
	}, fmt.Sprintf("must be exactly %d characters long", exact))
}

// AllowedChars rejects a string containing any rune for which allowed returns
// false. The message names the field and lists the offending runes in order
// of appearance, e.g. "Invalid characters in name: 42!". Bytes that are not
// valid UTF-8 are always offending and are reported as they appear in v.
func AllowedChars(field string, allowed func(rune) bool) FieldCheck[string] {
	return func(v string) outcome.Outcome[string, string] {
		var invalid strings.Builder
		for i := 0; i < len(v); {
			r, size := utf8.DecodeRuneInString(v[i:])
			if (r == utf8.RuneError && size == 1) || !allowed(r) {
				invalid.WriteString(v[i : i+size])
			}
			i += size
		}
		if invalid.Len() == 0 {
			return outcome.Valid[string](v)
		}
		return outcome.Invalid[string, string](fmt.Sprintf("Invalid characters in %s: %s", field, invalid.String()))
	}
}

// LettersAndSpaces accepts only ASCII letters and the space character.
func LettersAndSpaces(field string) FieldCheck[string] {
	return AllowedChars(field, func(r rune) bool {
		return r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// MatchesRegex validates a non-blank string against pattern.
func MatchesRegex(pattern *regexp.Regexp, description string) FieldCheck[string] {
	return Predicate(func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}
		return pattern.MatchString(v)
	}, fmt.Sprintf("must match %s pattern", description))
}

func NoWhitespace() FieldCheck[string] {
	return Predicate(func(v string) bool {
		return strings.IndexFunc(v, unicode.IsSpace) < 0
	}, "must not contain whitespace characters")
}
