package services

import (
	"FibonacciAPI/mirror"
	"FibonacciAPI/models"
	"FibonacciAPI/repositories"
	"context"
	"time"

	"go.uber.org/zap"
)

// Fibonacci returns the Fibonacci numbers strictly below upperLimit, seeded
// with 0 and 1.
func Fibonacci(upperLimit int64) []int64 {
	out := []int64{}
	a, b := int64(0), int64(1)
	for a < upperLimit {
		out = append(out, a)
		if b >= upperLimit {
			break
		}
		// a+b would reach the limit; b is the last term. Checked without
		// adding so the sum cannot overflow near MaxInt64.
		if a >= upperLimit-b {
			out = append(out, b)
			break
		}
		a, b = b, a+b
	}
	return out
}

type FibonacciService struct {
	Sessions repositories.SessionRepository
	Mirror   mirror.Writer
	Log      *zap.SugaredLogger
	now      func() time.Time
}

func NewFibonacciService(sessions repositories.SessionRepository, m mirror.Writer, log *zap.SugaredLogger) *FibonacciService {
	return &FibonacciService{Sessions: sessions, Mirror: m, Log: log, now: time.Now}
}

// Compute generates the sequence, records it as a session owned by user and
// writes the mirror copy. Elapsed covers the generation only.
func (s *FibonacciService) Compute(ctx context.Context, user *models.CurrentUser, upperLimit int64) (*models.Session, error) {
	if upperLimit < 0 {
		return nil, ErrInvalidLimit
	}

	start := time.Now()
	output := Fibonacci(upperLimit)
	elapsed := time.Since(start)

	session := &models.Session{
		SessionID:     newID(),
		User:          user.ID,
		Output:        output,
		UpperLimit:    upperLimit,
		Elapsed:       elapsed.Seconds(),
		ExecutionDate: s.now().Format(models.ExecutionDateLayout),
	}

	if err := s.Sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	if err := s.Mirror.WriteSession(ctx, session); err != nil {
		return nil, err
	}

	s.Log.Debugw("session recorded",
		"session_id", session.SessionID,
		"user_id", session.User,
		"upper_limit", upperLimit,
		"terms", len(output),
	)

	return session, nil
}
