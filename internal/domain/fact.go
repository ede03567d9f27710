package domain

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin и Postgres.
type DogFact struct {
	ID     int64
	Title  string
	Fact   string
	UserID int64

	// User is the owning user, loaded alongside the fact for responses.
	User User
}
