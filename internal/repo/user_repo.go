package repo

import (
	"context"
	"time"

	dom "github.com/kokafor1/capstone-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByToken(ctx context.Context, token string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	SetToken(ctx context.Context, userID int64, token string, expiration time.Time) error
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, first_name, last_name, username, email, password_hash, date_created, token, token_expiration`

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email,
		&u.PasswordHash, &u.DateCreated, &u.Token, &u.TokenExpiration)
	return u, err
}

// GetByToken returns the user holding the given bearer token.
func (r *PGUserRepo) GetByToken(ctx context.Context, token string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE token = $1`,
		token,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email,
		&u.PasswordHash, &u.DateCreated, &u.Token, &u.TokenExpiration)
	return u, err
}

// Create inserts a new user and returns it. Uniqueness of username and email
// is enforced by the DB constraints; callers map the violation.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, username, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	var out dom.User
	err := r.db.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Username, u.Email, u.PasswordHash,
	).Scan(&out.ID, &out.FirstName, &out.LastName, &out.Username, &out.Email,
		&out.PasswordHash, &out.DateCreated, &out.Token, &out.TokenExpiration)
	return out, err
}

// SetToken stores a new bearer token on the user row, overwriting any prior
// token. The previous session is invalidated by the overwrite.
func (r *PGUserRepo) SetToken(ctx context.Context, userID int64, token string, expiration time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET token = $2, token_expiration = $3 WHERE id = $1`,
		userID, token, expiration,
	)
	return err
}
