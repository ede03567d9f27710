package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/kokafor1/capstone-backend/internal/auth"
	dom "github.com/kokafor1/capstone-backend/internal/domain"
	"github.com/kokafor1/capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory stand-in for the Postgres repos, shared across
// the three repo implementations so FK-ish behavior holds together.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*dom.User
	facts    map[int64]*dom.DogFact
	comments map[int64]*dom.Comment
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*dom.User{},
		facts:    map[int64]*dom.DogFact{},
		comments: map[int64]*dom.Comment{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r memUserRepo) GetByToken(_ context.Context, token string) (dom.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Token != nil && *u.Token == token {
			return *u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r memUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return dom.User{}, &pgconn.PgError{Code: "23505"}
		}
	}
	u.ID = r.s.id()
	u.DateCreated = time.Now().UTC()
	r.s.users[u.ID] = &u
	return u, nil
}

func (r memUserRepo) SetToken(_ context.Context, userID int64, token string, expiration time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := r.s.users[userID]
	u.Token = &token
	u.TokenExpiration = &expiration
	return nil
}

type memFactRepo struct{ s *memStore }

func (r memFactRepo) Create(_ context.Context, f dom.DogFact) (dom.DogFact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.id()
	r.s.facts[f.ID] = &f
	return f, nil
}

func (r memFactRepo) GetByID(_ context.Context, id int64) (dom.DogFact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.facts[id]
	if !ok {
		return dom.DogFact{}, pgx.ErrNoRows
	}
	out := *f
	out.User = *r.s.users[f.UserID]
	return out, nil
}

func (r memFactRepo) List(_ context.Context) ([]dom.DogFact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.DogFact
	for _, f := range r.s.facts {
		out := *f
		out.User = *r.s.users[f.UserID]
		list = append(list, out)
	}
	return list, nil
}

func (r memFactRepo) Update(_ context.Context, id int64, title, fact string) (dom.DogFact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.facts[id]
	if !ok {
		return dom.DogFact{}, pgx.ErrNoRows
	}
	f.Title = title
	f.Fact = fact
	out := *f
	out.User = *r.s.users[f.UserID]
	return out, nil
}

func (r memFactRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.facts, id)
	for cid, c := range r.s.comments {
		if c.FactID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

type memCommentRepo struct{ s *memStore }

func (r memCommentRepo) Create(_ context.Context, c dom.Comment) (dom.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	c.DateCreated = time.Now().UTC()
	r.s.comments[c.ID] = &c
	return c, nil
}

func (r memCommentRepo) GetByID(_ context.Context, id int64) (dom.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return dom.Comment{}, pgx.ErrNoRows
	}
	out := *c
	out.User = *r.s.users[c.UserID]
	return out, nil
}

func (r memCommentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.comments, id)
	return nil
}

// newTestRouter wires the real services and handlers over the in-memory
// store, mirroring the route table from internal/app.
func newTestRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userSvc := service.NewUserService(memUserRepo{store}, time.Hour)
	factSvc := service.NewFactService(memFactRepo{store})
	commentSvc := service.NewCommentService(memCommentRepo{store}, memFactRepo{store})

	authHandler := NewAuthHandler(userSvc)
	factHandler := NewFactHandler(factSvc)
	commentHandler := NewCommentHandler(commentSvc)

	r := gin.New()
	r.POST("/users", authHandler.Register)
	r.GET("/token", auth.RequireBasic(userSvc), authHandler.GetToken)
	r.GET("/users/me", auth.RequireToken(userSvc), authHandler.Me)
	r.GET("/dog_facts", factHandler.List)
	r.GET("/dog_facts/:id", factHandler.GetByID)

	protected := r.Group("", auth.RequireToken(userSvc))
	protected.POST("/dog_facts", factHandler.Create)
	protected.PUT("/dog_facts/:id", factHandler.Update)
	protected.DELETE("/dog_facts/:id", factHandler.Delete)
	protected.POST("/dog_facts/:id/comments", commentHandler.Create)
	protected.DELETE("/dog_facts/:id/comments/:comment_id", commentHandler.Delete)
	return r
}
