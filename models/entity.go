// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Entity is implemented by every decoded API record. A nil identifier means
// the record has not been persisted yet.
type Entity interface {
	Identifier() *uuid.UUID
}
