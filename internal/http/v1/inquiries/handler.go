// Package inquiries exposes the viewer's sent contact requests, with creator
// contact details disclosed once a request is accepted.
package inquiries

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/platform/auth"
	"github.com/kalakararena/api/internal/platform/timeutil"
	"github.com/kalakararena/api/internal/service/directory"
)

// Register wires the sent-inquiries route into the provided API router.
func Register(api huma.API, dir directory.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-inquiries",
		Method:      http.MethodGet,
		Path:        "/inquiries",
		Summary:     "List sent inquiries",
		Description: "Returns the authenticated viewer's contact requests, newest first. Accepted ones carry the creator's WhatsApp and phone.",
		Tags:        []string{"Requests"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ListInput) (*ListOutput, error) {
		user := auth.UserFromContext(ctx)

		rows, err := dir.SentInquiries(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := make([]Inquiry, 0, len(rows))
		for _, r := range rows {
			out = append(out, toHTTPInquiry(r))
		}
		return &ListOutput{Body: ListData{Inquiries: out, Total: len(out)}}, nil
	})
}

func toHTTPInquiry(r *directory.Inquiry) Inquiry {
	return Inquiry{
		ID:          r.ID,
		CreatorID:   r.CreatorID,
		CreatorName: r.CreatorName,
		Message:     r.Message,
		Status:      string(r.Status),
		WhatsApp:    r.WhatsApp,
		Phone:       r.Phone,
		CreatedAt:   timeutil.Time{Time: r.CreatedAt},
	}
}
