package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidUUID validates the canonical 36-character UUID form.
// Length and hyphen positions are checked before the more expensive parse.
func ValidUUID() FieldCheck[string] {
	return Predicate(func(v string) bool {
		if strings.TrimSpace(v) == "" || len(v) != 36 {
			return false
		}
		if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}, "must be a valid UUID")
}

func NonNilUUID() FieldCheck[uuid.UUID] {
	return Predicate(func(v uuid.UUID) bool {
		return v != uuid.Nil
	}, "UUID cannot be nil")
}

func UUIDVersion(version int) FieldCheck[uuid.UUID] {
	return Predicate(func(v uuid.UUID) bool {
		return v != uuid.Nil && int(v.Version()) == version
	}, fmt.Sprintf("must be a UUID version %d", version))
}
