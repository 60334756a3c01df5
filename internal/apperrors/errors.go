// Package apperrors defines the error taxonomy shared by repositories,
// services and handlers. Repositories produce NotFound and StoreError,
// services produce ValidationError, and handlers translate all of them
// into HTTP status codes with Status.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationError reports request fields that are missing, empty or of the
// wrong type. Fields maps the JSON field name to a message.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a message for field unless one is already present.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

// NotFoundError reports that the referenced entity id does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func NotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// StoreError wraps a failure of the underlying store. Its message is safe to
// log; clients only ever see a generic description.
type StoreError struct {
	Op  string
	Err error
}

func Store(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// UpstreamError wraps a failure of an outbound HTTP dependency.
type UpstreamError struct {
	Service string
	Err     error
}

func Upstream(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Status maps an error to the HTTP status code and the message that may be
// shown to the client. Anything outside the taxonomy is an unexpected error.
func Status(err error) (int, string) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var storeErr *StoreError
	var upstreamErr *UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, "database error"
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, upstreamErr.Service + " is unavailable"
	default:
		return http.StatusInternalServerError, "unexpected error"
	}
}
