package inquiries

import "github.com/kalakararena/api/internal/platform/timeutil"

// Inquiry is one of the viewer's sent contact requests.
type Inquiry struct {
	ID          string        `json:"id"          doc:"Request identifier"`
	CreatorID   string        `json:"creatorId"   doc:"Receiving creator"`
	CreatorName string        `json:"creatorName" doc:"Creator display name"  example:"Meera Sharma"`
	Message     string        `json:"message"     doc:"Message text"`
	Status      string        `json:"status"      doc:"Request status"        example:"accepted"`
	WhatsApp    string        `json:"whatsapp"    doc:"Creator WhatsApp, set once accepted"`
	Phone       string        `json:"phone"       doc:"Creator phone, set once accepted"`
	CreatedAt   timeutil.Time `json:"createdAt"   doc:"Creation timestamp"    example:"2024-01-15T10:30:00.000Z"`
}

// ListData is the response body containing sent inquiries.
type ListData struct {
	Inquiries []Inquiry `json:"inquiries" doc:"Inquiries, newest first"`
	Total     int       `json:"total"     doc:"Total inquiries"          example:"3"`
}

// ListOutput for GET /inquiries
type ListOutput struct {
	Body ListData
}
