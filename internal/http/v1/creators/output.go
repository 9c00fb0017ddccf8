package creators

import "github.com/kalakararena/api/internal/platform/timeutil"

// ListData is the response body containing paginated creator cards.
type ListData struct {
	Creators []Card `json:"creators" doc:"Creators on this page"`
	Total    int    `json:"total"    doc:"Total creators matching the filter" example:"42"`
}

// ListOutput is the response wrapper with pagination Link header.
type ListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// GetOutput for GET /creators/{id}
type GetOutput struct {
	Body Page
}

// FollowData reports the follow state after the operation.
type FollowData struct {
	Following bool `json:"following" doc:"Whether the viewer now follows the creator" example:"true"`
}

// FollowOutput for PUT and DELETE /creators/{id}/follow
type FollowOutput struct {
	Body FollowData
}

// FollowedData is the response body containing followed creators.
type FollowedData struct {
	Creators []Card `json:"creators" doc:"Followed creators"`
	Total    int    `json:"total"    doc:"Total followed creators" example:"4"`
}

// FollowedOutput for GET /follows
type FollowedOutput struct {
	Body FollowedData
}

// ContactData is the created contact request.
type ContactData struct {
	ID        string        `json:"id"        doc:"Request identifier"`
	CreatorID string        `json:"creatorId" doc:"Receiving creator"`
	Message   string        `json:"message"   doc:"Message text"`
	Status    string        `json:"status"    doc:"Request status"     example:"pending"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp" example:"2024-01-15T10:30:00.000Z"`
}

// ContactOutput for POST /creators/{id}/contact (201 Created)
type ContactOutput struct {
	Body ContactData
}
