package follow

import (
	"context"
	"sync"
	"time"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu      sync.RWMutex
	follows map[string]*Follow

	// Err forces every operation to fail when set.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{follows: make(map[string]*Follow)}
}

func (m *MockService) Follow(_ context.Context, followerID, followingID string) error {
	if m.Err != nil {
		return m.Err
	}
	if followerID == followingID {
		return ErrSelfFollow
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := followerID + "_" + followingID
	if _, exists := m.follows[id]; exists {
		return nil
	}
	m.follows[id] = &Follow{
		ID:          id,
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}
	return nil
}

func (m *MockService) Unfollow(_ context.Context, followerID, followingID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.follows, followerID+"_"+followingID)
	return nil
}

func (m *MockService) IsFollowing(_ context.Context, followerID, followingID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.follows[followerID+"_"+followingID]
	return ok, nil
}

func (m *MockService) ListFollowing(_ context.Context, followerID string) ([]*Follow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Follow
	for _, f := range m.follows {
		if f.FollowerID == followerID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockService) FollowingSet(ctx context.Context, followerID string) (map[string]struct{}, error) {
	follows, err := m.ListFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(follows))
	for _, f := range follows {
		set[f.FollowingID] = struct{}{}
	}
	return set, nil
}

// Count returns the number of follow rows, for idempotence assertions.
func (m *MockService) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.follows)
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
