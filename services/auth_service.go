package services

import (
	"FibonacciAPI/models"
	"FibonacciAPI/repositories"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	Users  repositories.UserRepository
	Tokens *TokenIssuer
	Log    *zap.SugaredLogger
}

func NewAuthService(users repositories.UserRepository, tokens *TokenIssuer, log *zap.SugaredLogger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Log: log}
}

// newID returns a dashless UUID, the format used for user and session ids
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// RegisterUser hashes the password and stores a new user. Usernames must be
// unique since login resolves users by username.
func (s *AuthService) RegisterUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	_, err := s.Users.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return nil, ErrConflict
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          newID(),
		Username:    req.Username,
		Email:       req.Email,
		Name:        req.Name,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.Log.Infow("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// AuthenticateUser returns the stored user when password matches. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// Login authenticates and issues a bearer token with the given lifetime.
func (s *AuthService) Login(ctx context.Context, username, password string, ttl time.Duration) (string, error) {
	user, err := s.AuthenticateUser(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.Log.Debugw("login rejected", "username", username)
		}
		return "", err
	}

	return s.Tokens.IssueToken(user.Username, user.ID, ttl)
}

func (s *AuthService) ResolveCurrentUser(token string) (*models.CurrentUser, error) {
	return s.Tokens.ResolveToken(token)
}
