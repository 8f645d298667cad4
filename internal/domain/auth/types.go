package auth

// Package auth contains domain-level types for caller identity.
// It is pure and free of framework/adapter concerns.

import "strings"

// Identity represents the authenticated principal resolved from a bearer
// credential. Adapters map provider-specific claims into this shape.
type Identity struct {
	Subject string // stable user identifier from the provider (sub)
	Email   string
	Name    string
}

// NormalizedEmail returns the identity email trimmed and lower-cased,
// the form used for allow-list membership checks.
func (i Identity) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(i.Email))
}
