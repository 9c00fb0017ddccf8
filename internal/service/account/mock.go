package account

import (
	"context"
	"strconv"
	"sync"

	platformauth "github.com/kalakararena/api/internal/platform/auth"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu       sync.Mutex
	nextUID  int
	signUps  []SignUpParams
	signOuts []string

	// Err forces every operation to fail when set.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) SignUp(_ context.Context, params SignUpParams) (*SignUpResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if params.UserType != platformauth.UserTypeUser && params.UserType != platformauth.UserTypeCreator {
		return nil, ErrInvalidUserType
	}
	if len(params.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, prev := range m.signUps {
		if prev.Email == params.Email {
			return nil, ErrEmailTaken
		}
	}
	m.nextUID++
	m.signUps = append(m.signUps, params)

	landing := LandingPathUser
	if params.UserType == platformauth.UserTypeCreator {
		landing = LandingPathCreator
	}
	return &SignUpResult{
		UserID:      mockUID(m.nextUID),
		UserType:    params.UserType,
		LandingPath: landing,
	}, nil
}

func (m *MockService) SignOut(_ context.Context, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signOuts = append(m.signOuts, userID)
	return nil
}

// SignOuts returns the user IDs passed to SignOut, in order.
func (m *MockService) SignOuts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.signOuts))
	copy(out, m.signOuts)
	return out
}

func mockUID(n int) string {
	return "mock-uid-" + strconv.Itoa(n)
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
