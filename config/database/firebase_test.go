package database

import (
	"FibonacciAPI/config/environment"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirestoreClientRequiresSettings(t *testing.T) {
	ctx := context.Background()

	_, err := NewFirestoreClient(ctx, &environment.Config{FirebaseProjectID: "p"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewFirestoreClient(ctx, &environment.Config{FirebaseKey: "e30="})
	assert.ErrorIs(t, err, ErrMissingProjectID)

	_, err = NewFirestoreClient(ctx, &environment.Config{FirebaseKey: "%%%", FirebaseProjectID: "p"})
	assert.Error(t, err)
}

func TestDecodeCredentials(t *testing.T) {
	decoded, err := decodeCredentials("eyJ0eXBlIjoic2VydmljZV9hY2NvdW50In0=")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(decoded))
}
