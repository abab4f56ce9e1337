package records

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validkit/pkg/model"
)

// DecodeRecords reads a YAML sequence of records. JSON arrays are accepted
// too, being valid YAML. An empty document yields no records.
func DecodeRecords(r io.Reader) ([]model.Basic, error) {
	var records []model.Basic
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrDecode, err)
	}
	return records, nil
}
