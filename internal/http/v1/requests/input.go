package requests

// ListInput for GET /requests (no parameters needed)
type ListInput struct{}

// TriageInput for PATCH /requests/{id}
type TriageInput struct {
	ID   string `path:"id" maxLength:"128" doc:"Request identifier"`
	Body struct {
		Status string `json:"status" enum:"accepted,rejected" required:"true" doc:"Decision on the request" example:"accepted"`
	}
}
