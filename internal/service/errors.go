// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidLocale         = errors.New("invalid sort locale")
	ErrDecodingRecipes       = errors.New("error decoding recipes")
)
