package services

import (
	"FibonacciAPI/models"
	"FibonacciAPI/repositories"
	"context"
	"errors"

	"go.uber.org/zap"
)

type SessionService struct {
	Sessions repositories.SessionRepository
	Users    repositories.UserRepository
	Log      *zap.SugaredLogger
}

func NewSessionService(sessions repositories.SessionRepository, users repositories.UserRepository, log *zap.SugaredLogger) *SessionService {
	return &SessionService{Sessions: sessions, Users: users, Log: log}
}

func (s *SessionService) ListSessionIDs(ctx context.Context) ([]string, error) {
	ids, err := s.Sessions.ListSessionIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	return ids, nil
}

func (s *SessionService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.Users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users, nil
}

func (s *SessionService) ListSessionIDsByUser(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.Sessions.ListSessionIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	return ids, nil
}

// GetSession fetches any session by id regardless of its owner.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.Sessions.GetSession(ctx, sessionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	return session, err
}

// DeleteSession removes a session owned by user.
func (s *SessionService) DeleteSession(ctx context.Context, user *models.CurrentUser, sessionID string) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.User != user.ID {
		s.Log.Infow("session delete forbidden", "session_id", sessionID, "owner", session.User, "caller", user.ID)
		return ErrForbidden
	}

	return s.Sessions.DeleteSession(ctx, sessionID)
}
