// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("server: listen address is not configured")
	errNoHandler = errors.New("server: no handler to serve")
)
