package posts

import (
	"github.com/kalakararena/api/internal/platform/timeutil"
	postsvc "github.com/kalakararena/api/internal/service/post"
)

// Post is a portfolio post as returned to its owner.
type Post struct {
	ID          string        `json:"id"          doc:"Post identifier"`
	Title       string        `json:"title"       doc:"Post title"          example:"Peacock mehendi set"`
	Description string        `json:"description" doc:"Post description"`
	ImageURL    string        `json:"imageUrl"    doc:"Public image URL"`
	Category    string        `json:"category"    doc:"Craft category"      example:"Mehendi Art"`
	CreatedAt   timeutil.Time `json:"createdAt"   doc:"Creation timestamp"  example:"2024-01-15T10:30:00.000Z"`
}

// CreateOutput for POST /posts (201 Created)
type CreateOutput struct {
	Body Post
}

// ListData is the response body containing the caller's posts.
type ListData struct {
	Posts []Post `json:"posts" doc:"Posts, newest first"`
	Total int    `json:"total" doc:"Total posts"         example:"12"`
}

// ListOutput for GET /posts
type ListOutput struct {
	Body ListData
}

func toHTTPPost(p *postsvc.Post) Post {
	return Post{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		CreatedAt:   timeutil.Time{Time: p.CreatedAt},
	}
}
