// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Token is the envelope returned by both login endpoints.
type Token struct {
	// Value is the opaque bearer credential.
	Value string `json:"value"`
}

// FederatedIdentity is the opaque identity assertion produced by an external
// identity provider (e.g. Sign in with Apple) together with the optional
// profile fields the provider released.
type FederatedIdentity struct {
	// Assertion is the provider-signed identity token (a compact JWS).
	Assertion string

	// GivenName and FamilyName are combined into the display name sent to
	// the server. Both empty means no name was released.
	GivenName  string
	FamilyName string

	// Email, when released, is sent as the username.
	Email string
}

// DisplayName returns "<given> <family>" or nil when no name was released.
func (f FederatedIdentity) DisplayName() *string {
	if f.GivenName == "" && f.FamilyName == "" {
		return nil
	}
	name := strings.TrimSpace(f.GivenName + " " + f.FamilyName)
	return &name
}

// SignInWithAppleToken is the JSON body of POST /api/users/siwa.
type SignInWithAppleToken struct {
	Token    string  `json:"token"`
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
}

// NewSignInWithAppleToken builds the request envelope from an identity.
func NewSignInWithAppleToken(identity FederatedIdentity) SignInWithAppleToken {
	req := SignInWithAppleToken{
		Token: identity.Assertion,
		Name:  identity.DisplayName(),
	}
	if identity.Email != "" {
		email := identity.Email
		req.Username = &email
	}
	return req
}
