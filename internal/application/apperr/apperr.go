// Package apperr holds the error taxonomy shared by services and the REST layer.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

type (
	FieldError struct {
		Field   string
		Message string
	}
	FieldErrors []FieldError

	Error struct {
		Kind    Kind
		Message string
		Fields  FieldErrors
	}
)

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// Strings renders field errors as "field: message", sorted by field.
func (fe FieldErrors) Strings() []string {
	out := make([]string, len(fe))
	for i, f := range fe {
		out[i] = f.String()
	}
	sort.Strings(out)
	return out
}

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields.Strings(), "; ")
	}
	return e.Message
}

func newErr(kind Kind, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Message: msg}
}

func BadRequest(format string, args ...any) error {
	return newErr(KindBadRequest, format, args...)
}

func Conflict(format string, args ...any) error {
	return newErr(KindConflict, format, args...)
}

func Unauthenticated(format string, args ...any) error {
	return newErr(KindUnauthenticated, format, args...)
}

func Forbidden(format string, args ...any) error {
	return newErr(KindForbidden, format, args...)
}

// Validation wraps field-level violations; it returns nil for an empty list.
func Validation(fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
