package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	applog "github.com/kalakararena/api/internal/platform/logging"
	"github.com/kalakararena/api/internal/service/contact"
	"github.com/kalakararena/api/internal/service/creator"
	"github.com/kalakararena/api/internal/service/follow"
	"github.com/kalakararena/api/internal/service/post"
	"github.com/kalakararena/api/internal/service/profile"
)

// Composite implements Service on top of the per-table services.
type Composite struct {
	profiles profile.Service
	creators creator.Service
	posts    post.Service
	follows  follow.Service
	contacts contact.Service
}

// NewComposite creates the directory service.
func NewComposite(
	profiles profile.Service,
	creators creator.Service,
	posts post.Service,
	follows follow.Service,
	contacts contact.Service,
) *Composite {
	return &Composite{
		profiles: profiles,
		creators: creators,
		posts:    posts,
		follows:  follows,
		contacts: contacts,
	}
}

func (c *Composite) ListCreators(ctx context.Context, viewerID string, filter Filter) ([]*Card, error) {
	rows, err := c.creators.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}

	cards, err := c.assembleCards(ctx, viewerID, rows)
	if err != nil {
		return nil, err
	}
	return filterCards(cards, filter), nil
}

func (c *Composite) FollowedCreators(ctx context.Context, viewerID string) ([]*Card, error) {
	followRows, err := c.follows.ListFollowing(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	if len(followRows) == 0 {
		return []*Card{}, nil
	}

	ids := make([]string, 0, len(followRows))
	for _, f := range followRows {
		ids = append(ids, f.FollowingID)
	}
	rows, err := c.creators.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followed creators: %w", err)
	}

	// Preserve the follow order; drop ids whose creator row has vanished.
	ordered := make([]*creator.CreatorProfile, 0, len(ids))
	for _, id := range ids {
		if row, exists := rows[id]; exists {
			ordered = append(ordered, row)
		}
	}
	cards, err := c.assembleCards(ctx, viewerID, ordered)
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		card.IsFollowing = true
	}
	return cards, nil
}

// assembleCards joins creator rows with profiles, recent posts, and the
// viewer's follow set. The joins are fetched in parallel and each degrades
// independently: a failed leg logs and leaves its part of the card empty
// rather than sinking the whole listing.
func (c *Composite) assembleCards(ctx context.Context, viewerID string, rows []*creator.CreatorProfile) ([]*Card, error) {
	if len(rows) == 0 {
		return []*Card{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}

	var (
		profiles  map[string]*profile.Profile
		recent    map[string][]*post.Post
		following map[string]struct{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = c.profiles.GetMany(gctx, ids)
		if err != nil {
			applog.LogError(gctx, "Directory profile join failed", err)
			profiles = map[string]*profile.Profile{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = c.posts.RecentByCreators(gctx, ids, recentPostsPerCard)
		if err != nil {
			applog.LogError(gctx, "Directory post join failed", err)
			recent = map[string][]*post.Post{}
		}
		return nil
	})
	g.Go(func() error {
		if viewerID == "" {
			following = map[string]struct{}{}
			return nil
		}
		var err error
		following, err = c.follows.FollowingSet(gctx, viewerID)
		if err != nil {
			applog.LogError(gctx, "Directory follow join failed", err)
			following = map[string]struct{}{}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cards := make([]*Card, 0, len(rows))
	for _, row := range rows {
		card := &Card{
			UserID:      row.UserID,
			Bio:         row.Bio,
			City:        row.City,
			State:       row.State,
			Categories:  row.Categories,
			RecentPosts: recent[row.UserID],
		}
		if p, exists := profiles[row.UserID]; exists {
			card.FullName = p.FullName
			card.AvatarURL = p.AvatarURL
		}
		if card.RecentPosts == nil {
			card.RecentPosts = []*post.Post{}
		}
		if _, exists := following[row.UserID]; exists {
			card.IsFollowing = true
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// filterCards applies both conditions of the filter. The text condition
// matches a case-insensitive substring of the name, bio, or city; the
// category condition tests set membership.
func filterCards(cards []*Card, filter Filter) []*Card {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)
	if query == "" && category == "" {
		return cards
	}

	out := make([]*Card, 0, len(cards))
	for _, card := range cards {
		if query != "" && !matchesQuery(card, query) {
			continue
		}
		if category != "" && !hasCategory(card, category) {
			continue
		}
		out = append(out, card)
	}
	return out
}

func matchesQuery(card *Card, lowered string) bool {
	return strings.Contains(strings.ToLower(card.FullName), lowered) ||
		strings.Contains(strings.ToLower(card.Bio), lowered) ||
		strings.Contains(strings.ToLower(card.City), lowered)
}

func hasCategory(card *Card, category string) bool {
	for _, c := range card.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (c *Composite) GetCreator(ctx context.Context, viewerID, creatorID string) (*Page, error) {
	prof, err := c.profiles.Get(ctx, creatorID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	page := &Page{
		UserID:    prof.UserID,
		FullName:  prof.FullName,
		AvatarURL: prof.AvatarURL,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := c.creators.Get(gctx, creatorID)
		if err != nil {
			if errors.Is(err, creator.ErrNotFound) {
				return ErrCreatorNotFound
			}
			return fmt.Errorf("failed to fetch creator details: %w", err)
		}
		page.Creator = row
		return nil
	})
	g.Go(func() error {
		posts, err := c.posts.ListByCreator(gctx, creatorID)
		if err != nil {
			return fmt.Errorf("failed to fetch posts: %w", err)
		}
		page.Posts = posts
		return nil
	})
	g.Go(func() error {
		if viewerID == "" || viewerID == creatorID {
			return nil
		}
		// Follow state is decoration; a failed lookup renders the page
		// with the follow button in its default state.
		isFollowing, err := c.follows.IsFollowing(gctx, viewerID, creatorID)
		if err != nil {
			applog.LogError(gctx, "Creator page follow lookup failed", err)
			return nil
		}
		page.IsFollowing = isFollowing
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if page.Posts == nil {
		page.Posts = []*post.Post{}
	}
	return page, nil
}

func (c *Composite) SentInquiries(ctx context.Context, senderID string) ([]*Inquiry, error) {
	requests, err := c.contacts.ListBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	if len(requests) == 0 {
		return []*Inquiry{}, nil
	}

	ids := make([]string, 0, len(requests))
	seen := make(map[string]struct{}, len(requests))
	for _, r := range requests {
		if _, dup := seen[r.CreatorID]; dup {
			continue
		}
		seen[r.CreatorID] = struct{}{}
		ids = append(ids, r.CreatorID)
	}

	var (
		profiles map[string]*profile.Profile
		creators map[string]*creator.CreatorProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = c.profiles.GetMany(gctx, ids)
		if err != nil {
			applog.LogError(gctx, "Inquiry profile join failed", err)
			profiles = map[string]*profile.Profile{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		creators, err = c.creators.GetMany(gctx, ids)
		if err != nil {
			applog.LogError(gctx, "Inquiry creator join failed", err)
			creators = map[string]*creator.CreatorProfile{}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Inquiry, 0, len(requests))
	for _, r := range requests {
		inq := &Inquiry{
			ID:        r.ID,
			CreatorID: r.CreatorID,
			Message:   r.Message,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		}
		if p, exists := profiles[r.CreatorID]; exists {
			inq.CreatorName = p.FullName
		}
		if r.Status == contact.StatusAccepted {
			if row, exists := creators[r.CreatorID]; exists {
				inq.WhatsApp = row.WhatsApp
				inq.Phone = row.Phone
			}
		}
		out = append(out, inq)
	}
	return out, nil
}

// Compile-time interface check
var _ Service = (*Composite)(nil)
