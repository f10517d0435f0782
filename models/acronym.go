// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Acronym is a TIL record as returned by the API.
//
// ID is nil until the server has persisted the record.
type Acronym struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Short string     `json:"short"`
	Long  string     `json:"long"`

	// User references the owner. The API sends only the owner's id.
	User *UserRef `json:"user,omitempty"`
}

// Identifier returns the server-assigned id, or nil.
func (a Acronym) Identifier() *uuid.UUID {
	return a.ID
}

// CreateAcronymData is the request body for creating and updating acronyms.
// The owner is taken from the bearer token on the server side.
type CreateAcronymData struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// UserRef is the parent reference embedded in child records.
type UserRef struct {
	ID uuid.UUID `json:"id"`
}
