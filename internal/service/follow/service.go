package follow

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// Follow is a directed relationship from a viewer to a creator. Its
// existence is the sole signal of "is following"; at most one row exists per
// (follower, following) pair.
type Follow struct {
	ID          string
	FollowerID  string
	FollowingID string
	CreatedAt   time.Time
}

// Service defines follow-relationship operations. Follow and Unfollow are
// idempotent, so replayed toggles settle on zero or one row rather than
// racing a client-side check-then-act.
type Service interface {
	// Follow creates the relationship; following an already-followed
	// creator is a no-op. Self-follows return ErrSelfFollow.
	Follow(ctx context.Context, followerID, followingID string) error
	// Unfollow removes the relationship; removing a non-existent one is a
	// no-op.
	Unfollow(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	// ListFollowing returns the viewer's follow rows.
	ListFollowing(ctx context.Context, followerID string) ([]*Follow, error)
	// FollowingSet returns the ids the viewer follows, for membership tests.
	FollowingSet(ctx context.Context, followerID string) (map[string]struct{}, error)
}
