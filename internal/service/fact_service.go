package service

import (
	"context"
	"errors"

	dom "github.com/kokafor1/capstone-backend/internal/domain"
	"github.com/kokafor1/capstone-backend/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNotOwner = errors.New("not the owner")
)

type FactService struct {
	repo repo.FactRepo
}

func NewFactService(r repo.FactRepo) *FactService {
	return &FactService{repo: r}
}

// Create stores a new fact owned by user. Title and fact may be empty
// strings; presence is checked at the handler.
func (s *FactService) Create(ctx context.Context, user dom.User, title, fact string) (dom.DogFact, error) {
	return s.repo.Create(ctx, dom.DogFact{
		Title:  title,
		Fact:   fact,
		UserID: user.ID,
		User:   user,
	})
}

func (s *FactService) List(ctx context.Context) ([]dom.DogFact, error) {
	return s.repo.List(ctx)
}

func (s *FactService) GetByID(ctx context.Context, id int64) (dom.DogFact, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.DogFact{}, ErrNotFound
		}
		return dom.DogFact{}, err
	}
	return f, nil
}

// Update applies a partial update of title and fact. Ownership is decided by
// user ID equality against the stored row, nothing else.
func (s *FactService) Update(ctx context.Context, user dom.User, id int64, title, fact *string) (dom.DogFact, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return dom.DogFact{}, err
	}
	if existing.UserID != user.ID {
		return dom.DogFact{}, ErrNotOwner
	}
	patch := existing
	if title != nil {
		patch.Title = *title
	}
	if fact != nil {
		patch.Fact = *fact
	}
	f, err := s.repo.Update(ctx, id, patch.Title, patch.Fact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.DogFact{}, ErrNotFound
		}
		return dom.DogFact{}, err
	}
	return f, nil
}

// Delete removes the fact after the same ownership check as Update.
// Child comments go with it (FK cascade).
func (s *FactService) Delete(ctx context.Context, user dom.User, id int64) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != user.ID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
