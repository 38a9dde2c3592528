package storage

import (
	"errors"
	"fmt"
)

// Storage errors.
var (
	ErrDuplicatePerson   = errors.New("persons list contains duplicate person(s)")
	ErrDuplicateProperty = errors.New("properties list contains duplicate property(s)")
)

// DataConversionError reports a stored document that exists but could not
// be converted into model values.
type DataConversionError struct {
	Path string
	Err  error
}

func (e *DataConversionError) Error() string {
	return fmt.Sprintf("data conversion failed for %s: %v", e.Path, e.Err)
}

func (e *DataConversionError) Unwrap() error {
	return e.Err
}
