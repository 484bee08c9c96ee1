// Package apperr defines the domain error taxonomy shared by repositories,
// services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed or missing input, one message per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a field problem. The first message for a field wins.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// OrNil returns e when any field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func Invalid(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func NotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// CapacityExceededError is a business-rule violation on a bounded relationship.
type CapacityExceededError struct {
	Message string
}

func (e *CapacityExceededError) Error() string { return e.Message }

// LockedError is returned when a workflow state write-locks the fields being changed.
type LockedError struct {
	Entity string
	State  string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s is locked (%s) and cannot be modified", e.Entity, e.State)
}

// ConflictError covers illegal status transitions, duplicate rows and stale versions.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// AuthError is a failed login or an unusable session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// StorageError wraps a database failure. Op is logged, never shown to callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err unless it already belongs to the taxonomy.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsDomain reports whether err is one of the typed domain errors other than StorageError.
func IsDomain(err error) bool {
	var (
		v *ValidationError
		n *NotFoundError
		c *CapacityExceededError
		l *LockedError
		k *ConflictError
		a *AuthError
	)
	return errors.As(err, &v) || errors.As(err, &n) || errors.As(err, &c) ||
		errors.As(err, &l) || errors.As(err, &k) || errors.As(err, &a)
}
