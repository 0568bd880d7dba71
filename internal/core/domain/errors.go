package domain

import (
	"fmt"
	"strings"
)

// Kind classifies a domain error. The transport layer maps each kind to an
// HTTP status code in exactly one place (response.FromError).
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the error type returned by every service operation.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldViolation
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation builds a validation error from the collected field
// violations. Every violated field is reported, not just the first.
func NewValidation(fields []FieldViolation) *Error {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed: " + strings.Join(msgs, "; "),
		Fields:  fields,
	}
}

func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewInternal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// Violations accumulates field violations during input validation.
type Violations struct {
	fields []FieldViolation
}

// Add records a violation for the given field.
func (v *Violations) Add(field, message string) {
	v.fields = append(v.fields, FieldViolation{Field: field, Message: message})
}

// Addf records a violation with a formatted message.
func (v *Violations) Addf(field, format string, args ...interface{}) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// Err returns nil when no violations were recorded, otherwise a
// validation error listing all of them.
func (v *Violations) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return NewValidation(v.fields)
}
