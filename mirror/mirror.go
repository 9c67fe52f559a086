// Package mirror keeps a JSON copy of every recorded session outside the
// database, laid out as <root>/<userId>/<sessionId>.json.
package mirror

import (
	"FibonacciAPI/models"
	"context"
	"encoding/json"
	"path"
)

// Writer stores the copy of one session.
type Writer interface {
	WriteSession(ctx context.Context, session *models.Session) error
}

// ObjectKey is the relative location of a session copy.
func ObjectKey(session *models.Session) string {
	return path.Join(session.User, session.SessionID+".json")
}

func encode(session *models.Session) ([]byte, error) {
	return json.Marshal(session)
}

// Nop discards every session.
type Nop struct{}

func (Nop) WriteSession(context.Context, *models.Session) error { return nil }
