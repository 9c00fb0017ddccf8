package profile

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu       sync.RWMutex
	profiles map[string]*Profile

	// Err forces every operation to fail when set.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{profiles: make(map[string]*Profile)}
}

func (m *MockService) Create(_ context.Context, userID, fullName string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[userID]; exists {
		return nil, ErrAlreadyExists
	}
	now := time.Now().UTC()
	p := &Profile{
		UserID:    userID,
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.profiles[userID] = p
	return p, nil
}

func (m *MockService) Get(_ context.Context, userID string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockService) GetMany(_ context.Context, userIDs []string) (map[string]*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]*Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := m.profiles[id]; ok {
			cp := *p
			result[id] = &cp
		}
	}
	return result, nil
}

func (m *MockService) UpdateFullName(_ context.Context, userID, fullName string) (*Profile, error) {
	return m.mutate(userID, func(p *Profile) {
		p.FullName = strings.TrimSpace(fullName)
	})
}

func (m *MockService) SetAvatarURL(_ context.Context, userID, avatarURL string) (*Profile, error) {
	return m.mutate(userID, func(p *Profile) {
		p.AvatarURL = avatarURL
	})
}

func (m *MockService) mutate(userID string, fn func(*Profile)) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	fn(p)
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
