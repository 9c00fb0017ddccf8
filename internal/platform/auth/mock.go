package auth

import (
	"context"
)

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	User  *User
	Error error
}

// Verify returns the configured user or error.
func (m *MockVerifier) Verify(_ context.Context, _ string) (*User, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestUser returns a standard test account of type "user".
func TestUser() *User {
	return &User{
		UID:           "test-user-123",
		Email:         "viewer@example.com",
		EmailVerified: true,
		UserType:      UserTypeUser,
	}
}

// TestCreator returns a standard test account of type "creator".
func TestCreator() *User {
	return &User{
		UID:           "test-creator-456",
		Email:         "creator@example.com",
		EmailVerified: true,
		UserType:      UserTypeCreator,
	}
}

// Compile-time interface check
var _ Verifier = (*MockVerifier)(nil)
