package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/kokafor1/capstone-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCommentRepo struct {
	createFunc  func(ctx context.Context, c dom.Comment) (dom.Comment, error)
	getByIDFunc func(ctx context.Context, id int64) (dom.Comment, error)
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockCommentRepo) Create(ctx context.Context, c dom.Comment) (dom.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return dom.Comment{}, errors.New("not implemented")
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (dom.Comment, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return dom.Comment{}, errors.New("not implemented")
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func factRepoWith(fact dom.DogFact, ok bool) *mockFactRepo {
	return &mockFactRepo{
		getByIDFunc: func(context.Context, int64) (dom.DogFact, error) {
			if !ok {
				return dom.DogFact{}, pgx.ErrNoRows
			}
			return fact, nil
		},
	}
}

func TestCommentCreateFactMustExist(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{}, factRepoWith(dom.DogFact{}, false))

	_, err := svc.Create(context.Background(), dom.User{ID: 1}, 42, "nice")
	assert.ErrorIs(t, err, ErrFactNotFound)
}

func TestCommentCreate(t *testing.T) {
	comments := &mockCommentRepo{
		createFunc: func(_ context.Context, c dom.Comment) (dom.Comment, error) {
			c.ID = 3
			return c, nil
		},
	}
	svc := NewCommentService(comments, factRepoWith(dom.DogFact{ID: 42, UserID: 9}, true))

	c, err := svc.Create(context.Background(), dom.User{ID: 1, Username: "alice"}, 42, "nice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.FactID)
	assert.Equal(t, int64(1), c.UserID)
	assert.Equal(t, "alice", c.User.Username)
}

func TestCommentDeleteFactNotFound(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{}, factRepoWith(dom.DogFact{}, false))

	err := svc.Delete(context.Background(), dom.User{ID: 1}, 42, 3)
	assert.ErrorIs(t, err, ErrFactNotFound)
}

func TestCommentDeleteCommentNotFound(t *testing.T) {
	comments := &mockCommentRepo{
		getByIDFunc: func(context.Context, int64) (dom.Comment, error) {
			return dom.Comment{}, pgx.ErrNoRows
		},
	}
	svc := NewCommentService(comments, factRepoWith(dom.DogFact{ID: 42}, true))

	err := svc.Delete(context.Background(), dom.User{ID: 1}, 42, 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrNotOwner)
}

func TestCommentDeleteMismatchedFact(t *testing.T) {
	deleted := false
	comments := &mockCommentRepo{
		getByIDFunc: func(context.Context, int64) (dom.Comment, error) {
			return dom.Comment{ID: 3, FactID: 7, UserID: 1}, nil
		},
		deleteFunc: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewCommentService(comments, factRepoWith(dom.DogFact{ID: 42}, true))

	err := svc.Delete(context.Background(), dom.User{ID: 1}, 42, 3)
	assert.ErrorIs(t, err, ErrCommentMismatch)
	assert.False(t, deleted)
}

func TestCommentDeleteOwnershipByID(t *testing.T) {
	deleted := false
	comments := &mockCommentRepo{
		getByIDFunc: func(context.Context, int64) (dom.Comment, error) {
			return dom.Comment{ID: 3, FactID: 42, UserID: 1}, nil
		},
		deleteFunc: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewCommentService(comments, factRepoWith(dom.DogFact{ID: 42}, true))

	err := svc.Delete(context.Background(), dom.User{ID: 2}, 42, 3)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, deleted)

	require.NoError(t, svc.Delete(context.Background(), dom.User{ID: 1}, 42, 3))
	assert.True(t, deleted)
}
