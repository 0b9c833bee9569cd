// Package entity defines the domain entities for the auth feature.
package entity

// User is the session-visible profile of a registered user.
// It never carries the password or its hash, so it is safe to persist on the device.
type User struct {
	// ID is the document key of the user, which is the email address.
	ID string `json:"id"`

	// Email is the natural key of the user and is unique across all users.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	// CreatedAt is the ISO8601 timestamp written at registration.
	CreatedAt string `json:"createdAt"`
}

// Credential holds the password digest for a user.
// It is one-to-one with User and is never exposed outside the auth feature.
type Credential struct {
	Email        string
	PasswordHash string
}

// Account is the full document stored in the credential store: profile plus credential.
type Account struct {
	Profile    User
	Credential Credential
}

// Registration is the input for creating a new account.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}
