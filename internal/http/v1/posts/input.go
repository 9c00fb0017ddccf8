package posts

import "github.com/danielgtaylor/huma/v2"

// CreateFormData is the multipart payload for adding a portfolio post.
type CreateFormData struct {
	Image       huma.FormFile `form:"image" contentType:"image/jpeg,image/png,image/gif,image/webp" required:"true" doc:"Post image file"`
	Title       string        `form:"title"       required:"true" doc:"Post title"           example:"Peacock mehendi set"`
	Description string        `form:"description"                 doc:"Post description"`
	Category    string        `form:"category"                    doc:"Craft category"       example:"Mehendi Art"`
}

// CreateInput for POST /posts
type CreateInput struct {
	RawBody huma.MultipartFormFiles[CreateFormData]
}

// ListInput for GET /posts (no parameters needed)
type ListInput struct{}

// DeleteInput for DELETE /posts/{id}
type DeleteInput struct {
	ID string `path:"id" maxLength:"128" doc:"Post identifier"`
}
