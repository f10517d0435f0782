// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Category groups acronyms. ID is nil until persisted.
type Category struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Name string     `json:"name"`
}

// Identifier returns the server-assigned id, or nil.
func (c Category) Identifier() *uuid.UUID {
	return c.ID
}

// CreateCategoryData is the request body for creating a category.
type CreateCategoryData struct {
	Name string `json:"name"`
}
