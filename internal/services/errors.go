package services

import (
	"errors"
)

// Error kinds, matched by handlers with errors.Is to pick a status code.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)

type statusError struct {
	kind error
	msg  string
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.kind }

func notFoundErr(msg string) error     { return &statusError{ErrNotFound, msg} }
func conflictErr(msg string) error     { return &statusError{ErrConflict, msg} }
func unauthorizedErr(msg string) error { return &statusError{ErrUnauthorized, msg} }
func invalidInputErr(msg string) error { return &statusError{ErrInvalidInput, msg} }
