package creator

import (
	"context"
	"sync"
	"time"
)

// MockService implements Service in memory for unit tests. List returns
// creators in insertion order.
type MockService struct {
	mu       sync.RWMutex
	order    []string
	creators map[string]*CreatorProfile

	// Err forces every operation to fail when set.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{creators: make(map[string]*CreatorProfile)}
}

func (m *MockService) Create(_ context.Context, userID string) (*CreatorProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.creators[userID]; exists {
		return nil, ErrAlreadyExists
	}
	now := time.Now().UTC()
	c := &CreatorProfile{
		UserID:     userID,
		Categories: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.creators[userID] = c
	m.order = append(m.order, userID)
	cp := *c
	return &cp, nil
}

// Seed inserts a fully formed creator profile for test setup.
func (m *MockService) Seed(c *CreatorProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.creators[c.UserID]; !exists {
		m.order = append(m.order, c.UserID)
	}
	cp := *c
	m.creators[c.UserID] = &cp
}

func (m *MockService) Get(_ context.Context, userID string) (*CreatorProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, exists := m.creators[userID]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MockService) GetMany(_ context.Context, userIDs []string) (map[string]*CreatorProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]*CreatorProfile, len(userIDs))
	for _, id := range userIDs {
		if c, ok := m.creators[id]; ok {
			cp := *c
			result[id] = &cp
		}
	}
	return result, nil
}

func (m *MockService) List(_ context.Context) ([]*CreatorProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*CreatorProfile, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.creators[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockService) Update(_ context.Context, userID string, params UpdateParams) (*CreatorProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, exists := m.creators[userID]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Bio != nil {
		c.Bio = *params.Bio
	}
	if params.City != nil {
		c.City = *params.City
	}
	if params.State != nil {
		c.State = *params.State
	}
	if params.Phone != nil {
		c.Phone = *params.Phone
	}
	if params.WhatsApp != nil {
		c.WhatsApp = *params.WhatsApp
	}
	if params.Instagram != nil {
		c.Instagram = *params.Instagram
	}
	if params.Website != nil {
		c.Website = *params.Website
	}
	if params.Categories != nil {
		c.Categories = NormalizeCategories(*params.Categories)
	}
	if params.PortfolioDescription != nil {
		c.PortfolioDescription = *params.PortfolioDescription
	}
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	return &cp, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
