// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks create and update payloads before they are
// sent to, or accepted by, the TIL API.
//
// Validate takes the payload and, optionally, the names of the fields to
// check. With no field names every field of the payload is checked.
package validators

import "context"

// Validator validates a payload, optionally restricted to named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
