package ontology

import (
	"errors"
	"fmt"
)

// ErrorKind classifies generator failures. The set is closed.
type ErrorKind int

const (
	// KindParseFailure means an ontology document could not be read or parsed.
	// Recoverable: the run continues with the documents already loaded.
	KindParseFailure ErrorKind = iota + 1

	// KindUnresolvedRange means a property declares no range and cannot be
	// type-mapped. The property is skipped.
	KindUnresolvedRange

	// KindUnresolvedNamespace means a class's ontology has no usable namespace
	// abbreviation. The class is not emitted.
	KindUnresolvedNamespace

	// KindIOFailure means an output unit could not be written.
	KindIOFailure
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindParseFailure:
		return "parse_failure"
	case KindUnresolvedRange:
		return "unresolved_range"
	case KindUnresolvedNamespace:
		return "unresolved_namespace"
	case KindIOFailure:
		return "io_failure"
	default:
		return "unknown"
	}
}

// Error is a classified generator error. Subject names the document, class or
// property the error is about.
type Error struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error.
func NewError(kind ErrorKind, subject string, err error) error {
	return &Error{Kind: kind, Subject: subject, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain,
// or 0 when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsParseFailure returns true if err is a document parse failure.
func IsParseFailure(err error) bool {
	return KindOf(err) == KindParseFailure
}

// IsUnresolvedRange returns true if err is a missing property range.
func IsUnresolvedRange(err error) bool {
	return KindOf(err) == KindUnresolvedRange
}

// IsUnresolvedNamespace returns true if err is a missing namespace abbreviation.
func IsUnresolvedNamespace(err error) bool {
	return KindOf(err) == KindUnresolvedNamespace
}

// IsIOFailure returns true if err is an output write failure.
func IsIOFailure(err error) bool {
	return KindOf(err) == KindIOFailure
}
