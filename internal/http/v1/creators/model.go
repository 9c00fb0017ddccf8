package creators

import (
	"github.com/kalakararena/api/internal/platform/timeutil"
	"github.com/kalakararena/api/internal/service/directory"
	postsvc "github.com/kalakararena/api/internal/service/post"
)

// PostPreview is a portfolio post as rendered on listing cards and pages.
type PostPreview struct {
	ID        string        `json:"id"        doc:"Post identifier"     example:"6d1f6b2e-8b0a-4d2f-9a4e-2f3a1c5d7e9b"`
	Title     string        `json:"title"     doc:"Post title"          example:"Peacock mehendi set"`
	ImageURL  string        `json:"imageUrl"  doc:"Public image URL"`
	Category  string        `json:"category"  doc:"Craft category"      example:"Mehendi Art"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp"  example:"2024-01-15T10:30:00.000Z"`
}

// Card is one creator in a listing.
type Card struct {
	UserID      string        `json:"userId"      doc:"Creator identifier"`
	FullName    string        `json:"fullName"    doc:"Display name"             example:"Meera Sharma"`
	AvatarURL   string        `json:"avatarUrl"   doc:"Public avatar URL"`
	Bio         string        `json:"bio"         doc:"Short bio"`
	City        string        `json:"city"        doc:"City"                     example:"Jaipur"`
	State       string        `json:"state"       doc:"State"                    example:"Rajasthan"`
	Categories  []string      `json:"categories"  doc:"Craft categories"`
	RecentPosts []PostPreview `json:"recentPosts" doc:"Up to three newest posts"`
	IsFollowing bool          `json:"isFollowing" doc:"Whether the viewer follows this creator" example:"false"`
}

// Details holds the contact and portfolio fields of a creator page.
type Details struct {
	Bio                  string   `json:"bio"                  doc:"Short bio"`
	City                 string   `json:"city"                 doc:"City"`
	State                string   `json:"state"                doc:"State"`
	Instagram            string   `json:"instagram"            doc:"Instagram handle"`
	Website              string   `json:"website"              doc:"Website URL"`
	Categories           []string `json:"categories"           doc:"Craft categories"`
	PortfolioDescription string   `json:"portfolioDescription" doc:"Long-form portfolio text"`
}

// Page is a creator's full public page.
type Page struct {
	UserID      string        `json:"userId"      doc:"Creator identifier"`
	FullName    string        `json:"fullName"    doc:"Display name"`
	AvatarURL   string        `json:"avatarUrl"   doc:"Public avatar URL"`
	Details     Details       `json:"details"     doc:"Creator details"`
	Posts       []PostPreview `json:"posts"       doc:"All posts, newest first"`
	IsFollowing bool          `json:"isFollowing" doc:"Whether the viewer follows this creator"`
}

func toPostPreview(p *postsvc.Post) PostPreview {
	return PostPreview{
		ID:        p.ID,
		Title:     p.Title,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		CreatedAt: timeutil.Time{Time: p.CreatedAt},
	}
}

func toPostPreviews(posts []*postsvc.Post) []PostPreview {
	out := make([]PostPreview, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostPreview(p))
	}
	return out
}

func toCard(c *directory.Card) Card {
	categories := c.Categories
	if categories == nil {
		categories = []string{}
	}
	return Card{
		UserID:      c.UserID,
		FullName:    c.FullName,
		AvatarURL:   c.AvatarURL,
		Bio:         c.Bio,
		City:        c.City,
		State:       c.State,
		Categories:  categories,
		RecentPosts: toPostPreviews(c.RecentPosts),
		IsFollowing: c.IsFollowing,
	}
}

func toPage(p *directory.Page) Page {
	page := Page{
		UserID:      p.UserID,
		FullName:    p.FullName,
		AvatarURL:   p.AvatarURL,
		Posts:       toPostPreviews(p.Posts),
		IsFollowing: p.IsFollowing,
	}
	if p.Creator != nil {
		categories := p.Creator.Categories
		if categories == nil {
			categories = []string{}
		}
		page.Details = Details{
			Bio:                  p.Creator.Bio,
			City:                 p.Creator.City,
			State:                p.Creator.State,
			Instagram:            p.Creator.Instagram,
			Website:              p.Creator.Website,
			Categories:           categories,
			PortfolioDescription: p.Creator.PortfolioDescription,
		}
	}
	return page
}
