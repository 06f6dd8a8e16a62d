package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/finplanner/finplanner/internal/domain"
)

// MockTextGenerator is a mock implementation of TextGenerator.
type MockTextGenerator struct {
	GenerateFunc func(ctx context.Context, system, prompt string) (string, error)

	mu    sync.Mutex
	calls int
}

func NewMockTextGenerator() *MockTextGenerator {
	return &MockTextGenerator{}
}

func (m *MockTextGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, system, prompt)
	}
	return "", nil
}

// Calls returns how many times Generate was invoked.
func (m *MockTextGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return value, nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// MockSessionStore is an in-memory mock implementation of SessionStore.
type MockSessionStore struct {
	mu      sync.RWMutex
	reports map[string]*domain.AdviceReport

	SaveFunc   func(ctx context.Context, report *domain.AdviceReport) error
	GetFunc    func(ctx context.Context, sessionID string) (*domain.AdviceReport, error)
	DeleteFunc func(ctx context.Context, sessionID string) error
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{reports: make(map[string]*domain.AdviceReport)}
}

func (m *MockSessionStore) Save(ctx context.Context, report *domain.AdviceReport) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, report)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.SessionID] = report
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.AdviceReport, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return report, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reports, sessionID)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator returning a fixed
// sequence of IDs.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "session-" + itoa(m.next)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
