package notebook

import (
	"errors"
	"fmt"
)

// ParseError reports a notebook whose content is not valid JSON
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError reports valid JSON that does not have the notebook shape,
// for example a cell without a cell_type. Index is -1 for document level
// problems.
type StructureError struct {
	Path   string
	Index  int
	Field  string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid notebook %s: %s: %s", e.Path, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid notebook %s: cell %d: %s: %s", e.Path, e.Index, e.Field, e.Reason)
}

// IsDocumentError reports whether err is a data problem with a single
// notebook (ParseError or StructureError) rather than an environment fault
func IsDocumentError(err error) bool {
	var pe *ParseError
	var se *StructureError
	return errors.As(err, &pe) || errors.As(err, &se)
}

// Reason returns the message of a document error without the notebook path,
// for reports that already print the path. Other errors are returned as is.
func Reason(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	var se *StructureError
	if errors.As(err, &se) {
		if se.Index < 0 {
			return fmt.Sprintf("%s: %s", se.Field, se.Reason)
		}
		return fmt.Sprintf("cell %d: %s: %s", se.Index, se.Field, se.Reason)
	}
	return err.Error()
}
