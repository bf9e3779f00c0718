package models

import "time"

// UserProfile represents a user profile document in the "users" collection.
// The document key equals the account id assigned by the identity provider.
type UserProfile struct {
	// Account id assigned by the identity provider, immutable
	// example: x7Kq2pR9fYVd3mN8tL1wZoCa5uB2
	UID string `json:"uid"`

	// Display name chosen at signup, 3+ characters
	// example: alice
	Username string `json:"username"`

	// Contact address used as the login credential
	// example: alice@example.com
	Email string `json:"email"`

	// Always kept equal to Username on write
	// example: alice
	DisplayName string `json:"displayName"`

	// Set once at creation, immutable
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileUpdate carries the fields of a partial profile update.
// DisplayName is always set to Username by the edit workflow.
type ProfileUpdate struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
