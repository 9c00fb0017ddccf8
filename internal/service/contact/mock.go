package contact

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu       sync.RWMutex
	requests map[string]*ContactRequest

	// Err forces every operation to fail when set.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{requests: make(map[string]*ContactRequest)}
}

func (m *MockService) Create(_ context.Context, senderID, creatorID, message string) (*ContactRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == creatorID {
		return nil, ErrSelfContact
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	r := &ContactRequest{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		CreatorID: creatorID,
		Message:   message,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	m.requests[r.ID] = r
	cp := *r
	return &cp, nil
}

// Seed inserts a request for test setup.
func (m *MockService) Seed(r *ContactRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.requests[r.ID] = &cp
}

func (m *MockService) ListBySender(_ context.Context, senderID string) ([]*ContactRequest, error) {
	return m.list(func(r *ContactRequest) bool { return r.SenderID == senderID })
}

func (m *MockService) ListByCreator(_ context.Context, creatorID string) ([]*ContactRequest, error) {
	return m.list(func(r *ContactRequest) bool { return r.CreatorID == creatorID })
}

func (m *MockService) list(match func(*ContactRequest) bool) ([]*ContactRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*ContactRequest
	for _, r := range m.requests {
		if match(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockService) UpdateStatus(_ context.Context, creatorID, requestID string, newStatus Status) (*ContactRequest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if !newStatus.Terminal() {
		return nil, ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.requests[requestID]
	if !exists {
		return nil, ErrNotFound
	}
	if r.CreatorID != creatorID {
		return nil, ErrForbidden
	}
	if r.Status != StatusPending {
		return nil, ErrResolved
	}
	r.Status = newStatus
	cp := *r
	return &cp, nil
}

// Get returns a request by ID, for test assertions.
func (m *MockService) Get(requestID string) (*ContactRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.requests[requestID]
	if !ok {
		return nil, false
	}
	cp := *r
	return &cp, true
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
