package repo

import (
	"context"

	dom "github.com/kokafor1/capstone-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo interface {
	Create(ctx context.Context, c dom.Comment) (dom.Comment, error)
	GetByID(ctx context.Context, id int64) (dom.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type PGCommentRepo struct {
	db *pgxpool.Pool
}

func NewPGCommentRepo(db *pgxpool.Pool) *PGCommentRepo {
	return &PGCommentRepo{db: db}
}

func scanComment(row pgx.Row) (dom.Comment, error) {
	var c dom.Comment
	err := row.Scan(&c.ID, &c.Body, &c.DateCreated, &c.UserID, &c.FactID,
		&c.User.ID, &c.User.FirstName, &c.User.LastName,
		&c.User.Username, &c.User.Email, &c.User.DateCreated)
	return c, err
}

func (r *PGCommentRepo) Create(ctx context.Context, c dom.Comment) (dom.Comment, error) {
	query := `
		INSERT INTO comments (body, user_id, fact_id)
		VALUES ($1, $2, $3)
		RETURNING id, body, date_created, user_id, fact_id`
	var out dom.Comment
	err := r.db.QueryRow(ctx, query, c.Body, c.UserID, c.FactID).Scan(
		&out.ID, &out.Body, &out.DateCreated, &out.UserID, &out.FactID,
	)
	if err != nil {
		return dom.Comment{}, err
	}
	out.User = c.User
	return out, nil
}

func (r *PGCommentRepo) GetByID(ctx context.Context, id int64) (dom.Comment, error) {
	query := `
		SELECT c.id, c.body, c.date_created, c.user_id, c.fact_id,
		       u.id, u.first_name, u.last_name, u.username, u.email, u.date_created
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`
	return scanComment(r.db.QueryRow(ctx, query, id))
}

func (r *PGCommentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}
