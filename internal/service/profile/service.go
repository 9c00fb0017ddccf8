package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// Profile is the base identity row every account has, creator or not.
type Profile struct {
	UserID    string
	FullName  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service defines profile operations. One row exists per account, created at
// sign-up and mutated only by its owner.
type Service interface {
	Create(ctx context.Context, userID, fullName string) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	// GetMany fetches profiles for the given ids, keyed by user ID. Missing
	// rows are simply absent from the result. An empty id list performs no
	// query and returns an empty map.
	GetMany(ctx context.Context, userIDs []string) (map[string]*Profile, error)
	UpdateFullName(ctx context.Context, userID, fullName string) (*Profile, error)
	SetAvatarURL(ctx context.Context, userID, avatarURL string) (*Profile, error)
}
