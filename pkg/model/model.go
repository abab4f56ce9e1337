package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is an element of Basic.ListParameter.
type Item struct {
	FloatParameter float32 `json:"float_parameter" yaml:"float_parameter"`
}

// Basic is the reference record.
type Basic struct {
	StringParameter  string `json:"string_parameter" yaml:"string_parameter"`
	IntegerParameter int    `json:"integer_parameter" yaml:"integer_parameter"`
	ListParameter    []Item `json:"list_parameter" yaml:"list_parameter"`
}

// New assembles a Basic from already checked field values.
func New(stringParameter string, integerParameter int, listParameter []Item) Basic {
	return Basic{
		StringParameter:  stringParameter,
		IntegerParameter: integerParameter,
		ListParameter:    listParameter,
	}
}

// String renders "<string> <integer> " followed by the list length when the
// list is set, e.g. "The Number of the Beast 666 1".
func (b Basic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d ", b.StringParameter, b.IntegerParameter)
	if b.ListParameter != nil {
		sb.WriteString(strconv.Itoa(len(b.ListParameter)))
	}
	return sb.String()
}

func (i Item) String() string {
	return strconv.FormatFloat(float64(i.FloatParameter), 'g', -1, 32)
}
