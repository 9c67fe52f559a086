package repositories

import (
	"FibonacciAPI/models"
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FirestoreSessionRepository struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreSessionRepository(client *firestore.Client) *FirestoreSessionRepository {
	return &FirestoreSessionRepository{FirestoreClient: client}
}

func (r *FirestoreSessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	_, err := r.FirestoreClient.Collection(SessionsCollection).Doc(session.SessionID).Set(ctx, session)
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.SessionID, err)
	}
	return nil
}

func (r *FirestoreSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	doc, err := r.FirestoreClient.Collection(SessionsCollection).Doc(sessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	var session models.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", sessionID, err)
	}

	return &session, nil
}

func (r *FirestoreSessionRepository) ListSessionIDs(ctx context.Context) ([]string, error) {
	return r.collectIDs(ctx, r.FirestoreClient.Collection(SessionsCollection).Query)
}

func (r *FirestoreSessionRepository) ListSessionIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return r.collectIDs(ctx, r.FirestoreClient.Collection(SessionsCollection).Where("user", "==", userID))
}

func (r *FirestoreSessionRepository) collectIDs(ctx context.Context, query firestore.Query) ([]string, error) {
	iter := query.Select("session_id").Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}

		id, ok := doc.Data()["session_id"].(string)
		if !ok || id == "" {
			id = doc.Ref.ID
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *FirestoreSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.FirestoreClient.Collection(SessionsCollection).Doc(sessionID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
