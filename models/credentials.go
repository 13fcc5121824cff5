package models

// Credentials is what a person types to register or log in.
// The password is plaintext and must never be persisted or logged.
type Credentials struct {
	// Name identifies the account.
	Name string

	// Password is hashed before it reaches an [Account].
	Password string

	// IsAdmin is only meaningful at registration.
	IsAdmin bool
}
