// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// User is the public representation of an account. The API never returns
// password material.
type User struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
}

// Identifier returns the server-assigned id, or nil.
func (u User) Identifier() *uuid.UUID {
	return u.ID
}

// CreateUserData is the request body for registering a new account.
type CreateUserData struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}
