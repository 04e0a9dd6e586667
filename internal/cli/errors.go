// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/service"
	"github.com/MKhiriev/recook-book/internal/validators"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitValidation   = 2
	ExitAccessDenied = 3
)

var (
	ErrLoginRequired  = errors.New("login required")
	ErrAccessDenied   = errors.New("access denied")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidArg     = errors.New("invalid argument")
)

// ExitError carries the exit code and the text printed for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// asExitError classifies err. Validation failures exit with ExitValidation,
// gating and credential failures with ExitAccessDenied.
func asExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case errors.Is(err, validators.ErrValidation), errors.Is(err, ErrInvalidArg):
		msg := err.Error()
		if errors.Is(err, validators.ErrValidation) {
			msg = client.UserMessage(err)
		}
		return &ExitError{Code: ExitValidation, Message: msg, Err: err}
	case errors.Is(err, ErrLoginRequired):
		return &ExitError{Code: ExitAccessDenied, Message: client.MsgLoginRequired, Err: err}
	case errors.Is(err, service.ErrInvalidCredentials):
		return &ExitError{Code: ExitAccessDenied, Message: client.UserMessage(err), Err: err}
	case errors.Is(err, ErrAccessDenied):
		return &ExitError{Code: ExitAccessDenied, Message: err.Error(), Err: err}
	case errors.Is(err, service.ErrDuplicateEmail):
		return &ExitError{Code: ExitFailure, Message: client.UserMessage(err), Err: err}
	default:
		return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
	}
}
