package requests

import "github.com/kalakararena/api/internal/platform/timeutil"

// Request is an inbound contact request as shown in the creator's inbox.
type Request struct {
	ID         string        `json:"id"         doc:"Request identifier"`
	SenderID   string        `json:"senderId"   doc:"Sending account"`
	SenderName string        `json:"senderName" doc:"Sender display name" example:"Arjun Patel"`
	Message    string        `json:"message"    doc:"Message text"`
	Status     string        `json:"status"     doc:"Request status"      example:"pending"`
	CreatedAt  timeutil.Time `json:"createdAt"  doc:"Creation timestamp"  example:"2024-01-15T10:30:00.000Z"`
}

// ListData is the response body containing the creator's inbox.
type ListData struct {
	Requests []Request `json:"requests" doc:"Requests, newest first"`
	Total    int       `json:"total"    doc:"Total requests"         example:"5"`
}

// ListOutput for GET /requests
type ListOutput struct {
	Body ListData
}

// TriageOutput for PATCH /requests/{id}
type TriageOutput struct {
	Body Request
}
