package repo

import (
	"context"

	dom "github.com/kokafor1/capstone-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FactRepo interface {
	Create(ctx context.Context, f dom.DogFact) (dom.DogFact, error)
	GetByID(ctx context.Context, id int64) (dom.DogFact, error)
	List(ctx context.Context) ([]dom.DogFact, error)
	Update(ctx context.Context, id int64, title, fact string) (dom.DogFact, error)
	Delete(ctx context.Context, id int64) error
}

type PGFactRepo struct {
	db *pgxpool.Pool
}

func NewPGFactRepo(db *pgxpool.Pool) *PGFactRepo {
	return &PGFactRepo{db: db}
}

const factSelect = `
	SELECT f.id, f.title, f.fact, f.user_id,
	       u.id, u.first_name, u.last_name, u.username, u.email, u.date_created
	FROM dog_facts f
	JOIN users u ON u.id = f.user_id`

func scanFact(row pgx.Row) (dom.DogFact, error) {
	var f dom.DogFact
	err := row.Scan(&f.ID, &f.Title, &f.Fact, &f.UserID,
		&f.User.ID, &f.User.FirstName, &f.User.LastName,
		&f.User.Username, &f.User.Email, &f.User.DateCreated)
	return f, err
}

func (r *PGFactRepo) Create(ctx context.Context, f dom.DogFact) (dom.DogFact, error) {
	query := `
		INSERT INTO dog_facts (title, fact, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, fact, user_id`
	var out dom.DogFact
	err := r.db.QueryRow(ctx, query, f.Title, f.Fact, f.UserID).Scan(
		&out.ID, &out.Title, &out.Fact, &out.UserID,
	)
	if err != nil {
		return dom.DogFact{}, err
	}
	out.User = f.User
	return out, nil
}

func (r *PGFactRepo) GetByID(ctx context.Context, id int64) (dom.DogFact, error) {
	return scanFact(r.db.QueryRow(ctx, factSelect+` WHERE f.id = $1`, id))
}

func (r *PGFactRepo) List(ctx context.Context) ([]dom.DogFact, error) {
	rows, err := r.db.Query(ctx, factSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.DogFact
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *PGFactRepo) Update(ctx context.Context, id int64, title, fact string) (dom.DogFact, error) {
	query := `
		UPDATE dog_facts f SET title = $2, fact = $3
		FROM users u
		WHERE f.id = $1 AND u.id = f.user_id
		RETURNING f.id, f.title, f.fact, f.user_id,
		          u.id, u.first_name, u.last_name, u.username, u.email, u.date_created`
	return scanFact(r.db.QueryRow(ctx, query, id, title, fact))
}

// Delete removes the fact; comments cascade via the FK.
func (r *PGFactRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM dog_facts WHERE id = $1`, id)
	return err
}
