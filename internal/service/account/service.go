// Package account handles registration and session teardown against the
// Firebase identity backend. Sign-up also creates the backing rows that the
// rest of the product reads: a profile for everyone and a creator profile for
// accounts registered as creators.
package account

import (
	"context"
	"errors"
)

const (
	// LandingPathCreator is where a freshly registered creator is sent.
	LandingPathCreator = "/dashboard"
	// LandingPathUser is where a regular account is sent.
	LandingPathUser = "/explore"

	minPasswordLen = 6
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrWeakPassword    = errors.New("password too short")
	ErrInvalidUserType = errors.New("unknown account type")
)

// SignUpParams carries the registration form.
type SignUpParams struct {
	Email    string
	Password string
	FullName string
	// UserType is auth.UserTypeUser or auth.UserTypeCreator.
	UserType string
}

// SignUpResult reports the new account and where the client should land.
type SignUpResult struct {
	UserID      string
	UserType    string
	LandingPath string
}

// Service defines account lifecycle operations.
type Service interface {
	// SignUp creates the identity record with the account type claim, then
	// the profile row (and creator profile row when applicable).
	SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error)
	// SignOut revokes the account's refresh tokens. Issued ID tokens stay
	// valid until they expire; revocation stops new ones being minted.
	SignOut(ctx context.Context, userID string) error
}
