package creator

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("creator profile not found")
	ErrAlreadyExists = errors.New("creator profile already exists")
)

// CreatorProfile extends a Profile for accounts of type "creator". It exists
// 1:1 with the base profile and is mutated only by its owner.
type CreatorProfile struct {
	UserID               string
	Bio                  string
	City                 string
	State                string
	Phone                string
	WhatsApp             string
	Instagram            string
	Website              string
	Categories           []string
	PortfolioDescription string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// UpdateParams carries the merged dashboard save. Nil fields are left
// untouched; Categories replaces the whole set.
type UpdateParams struct {
	Bio                  *string
	City                 *string
	State                *string
	Phone                *string
	WhatsApp             *string
	Instagram            *string
	Website              *string
	Categories           *[]string
	PortfolioDescription *string
}

// Service defines creator-profile operations.
type Service interface {
	// Create inserts an empty creator profile row at sign-up.
	Create(ctx context.Context, userID string) (*CreatorProfile, error)
	Get(ctx context.Context, userID string) (*CreatorProfile, error)
	// GetMany fetches rows keyed by user ID; an empty id list performs no
	// query.
	GetMany(ctx context.Context, userIDs []string) (map[string]*CreatorProfile, error)
	// List returns every creator profile. Order is whatever the backend
	// returns; the directory deliberately does not impose a sort key.
	List(ctx context.Context) ([]*CreatorProfile, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*CreatorProfile, error)
}

// NormalizeCategories trims entries, drops empties, and removes duplicates
// while preserving first-seen order, so membership behaves as a set.
func NormalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
