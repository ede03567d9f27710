package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kokafor1/capstone-backend/internal/auth"
	dom "github.com/kokafor1/capstone-backend/internal/domain"
	"github.com/kokafor1/capstone-backend/internal/repo"
	"github.com/kokafor1/capstone-backend/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrDuplicateUser = errors.New("a user with that username and/or email already exists")
var ErrUnauthenticated = errors.New("invalid or expired token")

// UserService handles registration, credential checks and bearer tokens.
type UserService struct {
	repo     repo.UserRepo
	tokenTTL time.Duration
}

// NewUserService returns a new UserService. tokenTTL bounds how long an
// issued token stays valid.
func NewUserService(repo repo.UserRepo, tokenTTL time.Duration) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, tokenTTL: tokenTTL}
}

// Register creates a new user with a hashed password. Username and email
// uniqueness is left to the DB constraints so a concurrent duplicate insert
// still comes back as ErrDuplicateUser, never as a constraint 500.
func (s *UserService) Register(ctx context.Context, firstName, lastName, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, dom.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrDuplicateUser
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks username and password; returns user if valid.
// Failure is always ErrInvalidCredentials, regardless of which part was wrong.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken generates a fresh bearer token and persists it on the user row,
// silently invalidating any prior session.
func (s *UserService) IssueToken(ctx context.Context, user dom.User) (string, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return "", err
	}
	if err := s.repo.SetToken(ctx, user.ID, token, time.Now().UTC().Add(s.tokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user. Expired or unknown
// tokens fail with ErrUnauthenticated.
func (s *UserService) Authenticate(ctx context.Context, token string) (dom.User, error) {
	if token == "" {
		return dom.User{}, ErrUnauthenticated
	}
	u, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUnauthenticated
		}
		return dom.User{}, err
	}
	if u.TokenExpiration != nil && u.TokenExpiration.Before(time.Now().UTC()) {
		return dom.User{}, ErrUnauthenticated
	}
	return u, nil
}
