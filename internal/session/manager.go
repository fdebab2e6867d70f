package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/moodreel/recommendation-service/internal/coordinator"
	"github.com/moodreel/recommendation-service/internal/domain"
	"github.com/moodreel/recommendation-service/internal/store"
)

// Session is one viewer's recommendation context: a store plus the
// coordinator driving it. Sessions are explicitly created and torn down
// by the caller; nothing here is process-global.
type Session struct {
	ID          string
	Store       *store.Store
	Coordinator *coordinator.Coordinator
	CreatedAt   time.Time
}

// Factory builds the store/coordinator pair for a new session.
type Factory func() (*store.Store, *coordinator.Coordinator)

// Manager owns the live sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  Factory
}

func NewManager(factory Factory) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

// Create starts a fresh session.
func (m *Manager) Create() *Session {
	st, coord := m.factory()
	s := &Session{
		ID:          newSessionID(),
		Store:       st,
		Coordinator: coord,
		CreatedAt:   time.Now().UTC(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Delete tears a session down, cancelling its pending debounce timer.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Coordinator.Stop()
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
