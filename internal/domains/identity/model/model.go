package model

// User is the caller resolved from an access token.
type User struct {
	ID    string
	Email string
}
