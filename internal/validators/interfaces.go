// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks raw user input before it reaches the services.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation, which
//     the interactive UI uses to validate a single form field as it changes.
//   - ValidationErrors: every failed field of one Validate call, matched by
//     errors.Is against ErrValidation and against each field sentinel.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
