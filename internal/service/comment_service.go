package service

import (
	"context"
	"errors"

	dom "github.com/kokafor1/capstone-backend/internal/domain"
	"github.com/kokafor1/capstone-backend/internal/repo"
	"github.com/kokafor1/capstone-backend/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrFactNotFound    = errors.New("fact not found")
	ErrCommentMismatch = errors.New("comment is not associated with fact")
)

type CommentService struct {
	repo  repo.CommentRepo
	facts repo.FactRepo
}

func NewCommentService(r repo.CommentRepo, facts repo.FactRepo) *CommentService {
	return &CommentService{repo: r, facts: facts}
}

// Create adds a comment by user on the given fact. The fact must exist.
func (s *CommentService) Create(ctx context.Context, user dom.User, factID int64, body string) (dom.Comment, error) {
	if _, err := s.facts.GetByID(ctx, factID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Comment{}, ErrFactNotFound
		}
		return dom.Comment{}, err
	}
	c, err := s.repo.Create(ctx, dom.Comment{
		Body:   body,
		UserID: user.ID,
		FactID: factID,
		User:   user,
	})
	if err != nil {
		// Fact deleted between the existence check and the insert.
		if utils.IsPGForeignKeyViolation(err) {
			return dom.Comment{}, ErrFactNotFound
		}
		return dom.Comment{}, err
	}
	return c, nil
}

// Delete removes a comment. The fact and comment must both exist, the
// comment must hang off that fact, and user must be the comment's owner.
func (s *CommentService) Delete(ctx context.Context, user dom.User, factID, commentID int64) error {
	if _, err := s.facts.GetByID(ctx, factID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrFactNotFound
		}
		return err
	}
	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if c.FactID != factID {
		return ErrCommentMismatch
	}
	if c.UserID != user.ID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, commentID)
}
