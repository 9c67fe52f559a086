// Package repositories persists users and sessions. The Firestore
// implementation backs production; the in-memory one backs tests and
// local development.
package repositories

import (
	"FibonacciAPI/models"
	"context"
	"errors"
)

const (
	UsersCollection    = "users"
	SessionsCollection = "sessions"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	// FindByUsername returns the first user with the given username.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ListSessionIDs(ctx context.Context) ([]string, error)
	ListSessionIDsByUser(ctx context.Context, userID string) ([]string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
