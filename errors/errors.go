// Package errors error module.
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound error not found.
	ErrNotFound = fmt.Errorf("notfound")
	// ErrDuplicate name already registered.
	ErrDuplicate = fmt.Errorf("duplicate")
	// ErrInvalid malformed or degenerate definition.
	ErrInvalid = fmt.Errorf("invalid")
	// ErrOverlap volume protrudes from its mother or overlaps a sibling.
	ErrOverlap = fmt.Errorf("overlap")
	// ErrNotImplemented ...
	ErrNotImplemented = fmt.Errorf("notimplemented")
)

// FieldError collects validation messages keyed by field name.
type FieldError map[string]string

// NewFieldError ...
func NewFieldError() FieldError {
	return FieldError{}
}

// Add records message for field.
func (fe FieldError) Add(field, message string, values ...interface{}) {
	fe[field] = fmt.Sprintf(message, values...)
}

// Empty reports whether no field failed.
func (fe FieldError) Empty() bool {
	return len(fe) == 0
}

// Error ...
func (fe FieldError) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range sortedKeys(fe) {
		parts = append(parts, field+": "+fe[field])
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalid.
func (fe FieldError) Unwrap() error {
	return ErrInvalid
}

// OrNil returns nil if no field failed.
func (fe FieldError) OrNil() error {
	if fe.Empty() {
		return nil
	}
	return fe
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
