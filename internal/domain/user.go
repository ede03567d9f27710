package domain

import "time"

// User is the domain entity for a user account.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
	DateCreated  time.Time

	// Token is the active bearer token, nil if none has been issued.
	Token           *string
	TokenExpiration *time.Time
}
