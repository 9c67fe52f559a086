package repositories

import (
	"FibonacciAPI/models"
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type FirestoreUserRepository struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{FirestoreClient: client}
}

func (r *FirestoreUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.FirestoreClient.Collection(UsersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return fmt.Errorf("save user %s: %w", user.ID, err)
	}
	return nil
}

func (r *FirestoreUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	iter := r.FirestoreClient.Collection(UsersCollection).
		Where("username", "==", username).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user %q: %w", username, err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("parse user %s: %w", doc.Ref.ID, err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *FirestoreUserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	docs, err := r.FirestoreClient.Collection(UsersCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("parse user %s: %w", doc.Ref.ID, err)
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, nil
}
