// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the authentication state of the running process.
//
// A nil User means Anonymous. An authenticated session holds a copy of the
// account taken at login time, not a reference into the directory.
type Session struct {
	User *Account `json:"user,omitempty"`
}

// Authenticated reports whether the session carries a logged-in user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	// Session is the freshly authenticated session.
	Session Session

	// Destination is the page the caller should navigate to next: the
	// pending-return target if one was remembered, the default post-login
	// page otherwise.
	Destination Page
}
