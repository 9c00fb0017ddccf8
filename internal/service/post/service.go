package post

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound  = errors.New("post not found")
	ErrForbidden = errors.New("post belongs to another creator")
)

// Post is one portfolio entry. Rows are created and deleted by the owning
// creator and never updated.
type Post struct {
	ID          string
	UserID      string
	Title       string
	Description string
	ImageURL    string
	Category    string
	CreatedAt   time.Time
}

// CreateParams for adding a portfolio post. The image has already been
// uploaded; ImageURL is its public URL.
type CreateParams struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
}

// Service defines portfolio post operations.
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Post, error)
	// Delete removes a post after checking ownership: ErrNotFound when the
	// row is missing, ErrForbidden when it belongs to someone else. The
	// deleted post is returned so callers can clean up the stored image.
	Delete(ctx context.Context, userID, postID string) (*Post, error)
	// ListByCreator returns all of one creator's posts, newest first.
	ListByCreator(ctx context.Context, userID string) ([]*Post, error)
	// RecentByCreators returns up to perCreator newest posts for each given
	// creator, keyed by user ID. An empty id list performs no query.
	RecentByCreators(ctx context.Context, userIDs []string, perCreator int) (map[string][]*Post, error)
}
