package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when aggregation is asked to pivot a dataset
// with zero records. The aggregator fails rather than producing an empty
// table; an empty pivot has no downstream meaning.
var ErrEmptyDataset = errors.New("dataset contains no records")

// InvalidFieldError reports a grouping, time, or value field that is not
// part of the dataset schema.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field %q is not present in the dataset schema", e.Field)
}
