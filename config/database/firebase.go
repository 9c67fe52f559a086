package database

import (
	"FibonacciAPI/config/environment"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

var (
	ErrMissingCredentials = errors.New("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	ErrMissingProjectID   = errors.New("FIREBASE_PROJECT_ID environment variable is missing")
)

// NewFirestoreClient initializes the Firebase app from the base64 encoded
// service account and returns its Firestore client.
func NewFirestoreClient(ctx context.Context, cfg *environment.Config) (*firestore.Client, error) {
	if cfg.FirebaseKey == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.FirebaseProjectID == "" {
		return nil, ErrMissingProjectID
	}

	decodedCredentials, err := decodeCredentials(cfg.FirebaseKey)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.FirebaseProjectID,
	}, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	return client, nil
}

func decodeCredentials(encoded string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}
	return decoded, nil
}
