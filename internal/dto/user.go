package dto

import "time"

// RegisterRequest is the JSON body for POST /users.
// Fields are pointers so that a missing key can be told apart from an empty
// string: presence is required, emptiness is not.
type RegisterRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// Missing returns the names of required fields absent from the body.
func (r RegisterRequest) Missing() []string {
	var missing []string
	if r.FirstName == nil {
		missing = append(missing, "firstName")
	}
	if r.LastName == nil {
		missing = append(missing, "lastName")
	}
	if r.Username == nil {
		missing = append(missing, "username")
	}
	if r.Email == nil {
		missing = append(missing, "email")
	}
	if r.Password == nil {
		missing = append(missing, "password")
	}
	return missing
}

// UserResponse is the public user dict.
type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DateCreated time.Time `json:"dateCreated"`
}

// TokenResponse is returned by GET /token.
type TokenResponse struct {
	Token string `json:"token"`
}
