package domain

import "time"

// Comment belongs to exactly one fact and one user.
type Comment struct {
	ID          int64
	Body        string
	DateCreated time.Time
	UserID      int64
	FactID      int64

	User User
}
