package creators

import "github.com/kalakararena/api/internal/platform/pagination"

// ListInput defines query parameters for the creator directory.
type ListInput struct {
	pagination.Params
	Query    string `query:"q"        maxLength:"200" doc:"Matches name, bio, or city (case-insensitive)" example:"jaipur"`
	Category string `query:"category" maxLength:"100" doc:"Keep only creators offering this category"     example:"Mehendi Art"`
}

// GetInput for GET /creators/{id}
type GetInput struct {
	ID string `path:"id" maxLength:"128" doc:"Creator identifier"`
}

// FollowInput for PUT /creators/{id}/follow
type FollowInput struct {
	ID string `path:"id" maxLength:"128" doc:"Creator identifier"`
}

// UnfollowInput for DELETE /creators/{id}/follow
type UnfollowInput struct {
	ID string `path:"id" maxLength:"128" doc:"Creator identifier"`
}

// FollowedInput for GET /follows (no parameters needed)
type FollowedInput struct{}

// ContactInput for POST /creators/{id}/contact
type ContactInput struct {
	ID   string `path:"id" maxLength:"128" doc:"Creator identifier"`
	Body struct {
		Message string `json:"message" minLength:"1" maxLength:"2000" required:"true" doc:"Message to the creator" example:"Hi! Do you take bridal bookings for December?"`
	}
}
