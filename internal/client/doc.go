// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the event side of the application.
//
// App receives user events (page loads, form submissions, delete and upvote
// requests), validates input, calls the domain services and, after every
// mutation, recomputes the auth state and the derived recipe listings and
// hands them to a Renderer. Front ends such as the terminal UI and the
// command line only translate input into App calls and draw what the
// Renderer receives.
package client
