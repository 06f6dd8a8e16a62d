package memory

import (
	"context"
	"sync"
	"time"

	"github.com/finplanner/finplanner/internal/domain"
)

// SessionStore implements usecase.SessionStore in process memory. Reports
// expire after the configured TTL; a zero TTL keeps them forever.
type SessionStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]sessionEntry

	now func() time.Time
}

type sessionEntry struct {
	report    *domain.AdviceReport
	expiresAt time.Time
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:     ttl,
		entries: make(map[string]sessionEntry),
		now:     time.Now,
	}
}

// Save stores a report under its session ID.
func (s *SessionStore) Save(ctx context.Context, report *domain.AdviceReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := sessionEntry{report: report}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[report.SessionID] = entry

	return nil
}

// Get retrieves a report by session ID.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.AdviceReport, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()

		return nil, domain.ErrSessionNotFound
	}

	return entry.report, nil
}

// Delete removes a report.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Cleanup removes expired reports. Should be called periodically.
func (s *SessionStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.entries {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
