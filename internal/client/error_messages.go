// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/recook-book/internal/service"
	"github.com/MKhiriev/recook-book/internal/validators"
)

// Messages shown to the user through Renderer.ShowMessage.
const (
	// MsgLoginRequired is shown when an anonymous visit to a restricted page
	// is redirected to the login page.
	MsgLoginRequired = "Please login to access RECOOK BOOK"

	// MsgAlreadyLoggedIn is shown when a logged-in user opens login or signup.
	MsgAlreadyLoggedIn = "Welcome back! Redirecting to home page..."

	MsgLoggedOut = "Logged out successfully. Redirecting to login..."

	MsgLoginSucceeded  = "Login successful! Redirecting..."
	MsgSignupSucceeded = "Account created successfully! You can now log in."

	MsgInvalidCredentials = "Invalid email or password"
	MsgDuplicateEmail     = "An account with this email already exists"
	MsgSignupFailed       = "An error occurred during signup. Please try again."

	MsgRecipeSubmitted = "Recipe submitted successfully!"
	MsgRecipeDeleted   = "Recipe deleted successfully!"

	// MsgConfirmDelete is the question front ends ask before RequestDelete.
	MsgConfirmDelete = "Are you sure you want to delete this recipe? This action cannot be undone."

	// MsgStorageFailure covers every error the user cannot act on.
	MsgStorageFailure = "Something went wrong while saving your data. Please try again."
)

// UserMessage turns an error returned by App into the text shown to the user.
// Validation errors list the message of every failed field, one per line.
func UserMessage(err error) string {
	var verrs validators.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		lines := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			lines = append(lines, fe.Message)
		}
		return strings.Join(lines, "\n")
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, service.ErrDuplicateEmail):
		return MsgDuplicateEmail
	default:
		return MsgStorageFailure
	}
}
