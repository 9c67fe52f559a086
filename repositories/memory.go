package repositories

import (
	"FibonacciAPI/models"
	"context"
	"sync"
)

// MemoryStore keeps users and sessions in process memory. Insertion order
// is preserved so listings are stable.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	userOrder    []string
	sessions     map[string]*models.Session
	sessionOrder []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    map[string]*models.User{},
		sessions: map[string]*models.Session{},
	}
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		m.userOrder = append(m.userOrder, user.ID)
	}
	stored := *user
	m.users[user.ID] = &stored

	return nil
}

func (m *MemoryStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.userOrder {
		if u := m.users[id]; u.Username == username {
			found := *u
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

func (m *MemoryStore) ListUsers(_ context.Context) ([]*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*models.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		u := *m.users[id]
		users = append(users, &u)
	}

	return users, nil
}

func (m *MemoryStore) CreateSession(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[session.SessionID]; !ok {
		m.sessionOrder = append(m.sessionOrder, session.SessionID)
	}
	m.sessions[session.SessionID] = copySession(session)

	return nil
}

func (m *MemoryStore) GetSession(_ context.Context, sessionID string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	return copySession(s), nil
}

func (m *MemoryStore) ListSessionIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.sessionOrder...), nil
}

func (m *MemoryStore) ListSessionIDsByUser(_ context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for _, id := range m.sessionOrder {
		if m.sessions[id].User == userID {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return nil
	}
	delete(m.sessions, sessionID)
	for i, id := range m.sessionOrder {
		if id == sessionID {
			m.sessionOrder = append(m.sessionOrder[:i], m.sessionOrder[i+1:]...)
			break
		}
	}

	return nil
}

func copySession(s *models.Session) *models.Session {
	c := *s
	c.Output = append(make([]int64, 0, len(s.Output)), s.Output...)
	return &c
}
