package mirror

import (
	"FibonacciAPI/models"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Disk writes session copies below a local directory, creating the root
// and per-user directories on demand.
type Disk struct {
	root string
}

func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

func (d *Disk) UserDir(userID string) string {
	return filepath.Join(d.root, userID)
}

func (d *Disk) WriteSession(_ context.Context, session *models.Session) error {
	dir := d.UserDir(session.User)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	data, err := encode(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.SessionID, err)
	}

	file := filepath.Join(d.root, filepath.FromSlash(ObjectKey(session)))
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}

	return nil
}
