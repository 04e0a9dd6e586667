// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable front ends
// driving an App.
type Client interface {
	// Run starts the front end and blocks until the user quits or ctx is
	// cancelled.
	Run(ctx context.Context) error
}
