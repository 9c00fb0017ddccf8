// Package directory composes the per-table services into the read models the
// browsing surfaces need: the explore listing, a creator's public page, the
// viewer's followed creators, and the viewer's sent inquiries.
package directory

import (
	"context"
	"errors"
	"time"

	"github.com/kalakararena/api/internal/service/contact"
	"github.com/kalakararena/api/internal/service/creator"
	"github.com/kalakararena/api/internal/service/post"
)

// ErrCreatorNotFound is returned when the requested creator page does not
// exist. A missing profile row is treated the same as a missing creator row.
var ErrCreatorNotFound = errors.New("creator not found")

// recentPostsPerCard caps how many portfolio previews ride on a listing card.
const recentPostsPerCard = 3

// Card is one creator in a listing: identity, creator details, a short strip
// of recent work, and whether the viewer follows them. Creators with no posts
// still appear, with an empty strip.
type Card struct {
	UserID      string
	FullName    string
	AvatarURL   string
	Bio         string
	City        string
	State       string
	Categories  []string
	RecentPosts []*post.Post
	IsFollowing bool
}

// Page is a creator's full public page.
type Page struct {
	UserID      string
	FullName    string
	AvatarURL   string
	Creator     *creator.CreatorProfile
	Posts       []*post.Post
	IsFollowing bool
}

// Inquiry is one of the viewer's sent contact requests, joined with the
// creator's name. Contact details are only disclosed once the creator has
// accepted.
type Inquiry struct {
	ID          string
	CreatorID   string
	CreatorName string
	Message     string
	Status      contact.Status
	CreatedAt   time.Time
	// WhatsApp and Phone are empty unless Status is accepted.
	WhatsApp string
	Phone    string
}

// Filter narrows a creator listing. Both conditions must hold when set: the
// text must appear in the name, bio, or city (case-insensitive), and the
// category must be one of the creator's.
type Filter struct {
	Query    string
	Category string
}

// Service assembles directory read models. viewerID is empty for anonymous
// callers, which disables follow state.
type Service interface {
	// ListCreators returns every creator matching the filter.
	ListCreators(ctx context.Context, viewerID string, filter Filter) ([]*Card, error)
	// GetCreator returns one creator's page, or ErrCreatorNotFound.
	GetCreator(ctx context.Context, viewerID, creatorID string) (*Page, error)
	// FollowedCreators returns cards for the creators the viewer follows.
	FollowedCreators(ctx context.Context, viewerID string) ([]*Card, error)
	// SentInquiries returns the viewer's contact requests, newest first.
	SentInquiries(ctx context.Context, senderID string) ([]*Inquiry, error)
}
