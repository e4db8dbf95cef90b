package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials      = errors.New("models: invalid credentials")
	ErrDuplicateEmail          = errors.New("models: duplicate email")
	ErrDuplicateUsername       = errors.New("models: duplicate username")
	ErrUserNotFound            = errors.New("models: user not found")
	ErrProfileNotFound         = errors.New("profile not found")
	ErrOfferNotFound           = errors.New("offer not found")
	ErrOfferDetailNotFound     = errors.New("offer detail not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrReviewNotFound          = errors.New("review not found")
	ErrAlreadyReviewed         = errors.New("user already reviewed this business")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrPermissionDenied        = errors.New("permission denied")
)

// ValidationError carries field-keyed messages so handlers can return the
// same body shape for every 400 response.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{Fields: map[string][]string{}}
	e.Add(field, message)
	return e
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return "validation error: " + strings.Join(parts, ", ")
}
