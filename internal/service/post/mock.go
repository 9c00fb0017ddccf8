package post

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
	mu    sync.RWMutex
	posts map[string]*Post

	// Err forces every operation to fail when set. CreateErr fails only
	// Create, for compensation-path tests.
	Err       error
	CreateErr error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{posts: make(map[string]*Post)}
}

func (m *MockService) Create(_ context.Context, userID string, params CreateParams) (*Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p := &Post{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		ImageURL:    params.ImageURL,
		Category:    params.Category,
		CreatedAt:   time.Now().UTC(),
	}
	m.posts[p.ID] = p
	cp := *p
	return &cp, nil
}

// Seed inserts a post for test setup.
func (m *MockService) Seed(p *Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.posts[p.ID] = &cp
}

func (m *MockService) Delete(_ context.Context, userID, postID string) (*Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.posts[postID]
	if !exists {
		return nil, ErrNotFound
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	delete(m.posts, postID)
	cp := *p
	return &cp, nil
}

func (m *MockService) ListByCreator(_ context.Context, userID string) ([]*Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Post
	for _, p := range m.posts {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *MockService) RecentByCreators(_ context.Context, userIDs []string, perCreator int) (map[string][]*Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string][]*Post, len(userIDs))
	if len(userIDs) == 0 || perCreator <= 0 {
		return result, nil
	}
	for _, id := range userIDs {
		var posts []*Post
		for _, p := range m.posts {
			if p.UserID == id {
				cp := *p
				posts = append(posts, &cp)
			}
		}
		sortNewestFirst(posts)
		if len(posts) > perCreator {
			posts = posts[:perCreator]
		}
		if len(posts) > 0 {
			result[id] = posts
		}
	}
	return result, nil
}

func sortNewestFirst(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
