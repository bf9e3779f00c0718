package models

import "time"

// Account represents a credential record created at the identity provider.
type Account struct {
	// Account id assigned by the provider (document key for the profile)
	UID string `json:"uid"`

	// Email used as the login credential
	Email string `json:"email"`

	// Session token returned at creation, used for follow-up account calls
	IDToken string `json:"-"`

	// Session expiry decoded from the token claims; zero if not decodable
	ExpiresAt time.Time `json:"-"`
}
