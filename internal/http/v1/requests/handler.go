// Package requests exposes the creator's contact-request inbox: listing
// inbound requests and accepting or rejecting pending ones.
package requests

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	"github.com/kalakararena/api/internal/platform/timeutil"
	contactsvc "github.com/kalakararena/api/internal/service/contact"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

// Register wires contact-request inbox routes into the provided API router.
func Register(api huma.API, contacts contactsvc.Service, profiles profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-contact-requests",
		Method:      http.MethodGet,
		Path:        "/requests",
		Summary:     "List inbound contact requests",
		Description: "Returns the authenticated creator's inbox, newest request first, with sender names.",
		Tags:        []string{"Requests"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ListInput) (*ListOutput, error) {
		user := auth.UserFromContext(ctx)
		if !user.IsCreator() {
			return nil, huma.Error403Forbidden("only creators receive contact requests")
		}

		rows, err := contacts.ListByCreator(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		names := senderNames(ctx, profiles, rows)
		out := make([]Request, 0, len(rows))
		for _, r := range rows {
			out = append(out, toHTTPRequest(r, names[r.SenderID]))
		}
		return &ListOutput{Body: ListData{Requests: out, Total: len(out)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "triage-contact-request",
		Method:      http.MethodPatch,
		Path:        "/requests/{id}",
		Summary:     "Accept or reject a contact request",
		Description: "Moves a pending request to accepted or rejected. Resolved requests cannot be changed again.",
		Tags:        []string{"Requests"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *TriageInput) (*TriageOutput, error) {
		user := auth.UserFromContext(ctx)
		if !user.IsCreator() {
			return nil, huma.Error403Forbidden("only creators receive contact requests")
		}

		updated, err := contacts.UpdateStatus(ctx, user.UID, input.ID, contactsvc.Status(input.Body.Status))
		if err != nil {
			switch {
			case errors.Is(err, contactsvc.ErrNotFound):
				return nil, huma.Error404NotFound("contact request not found")
			case errors.Is(err, contactsvc.ErrForbidden):
				return nil, huma.Error403Forbidden("contact request belongs to another creator")
			case errors.Is(err, contactsvc.ErrResolved):
				return nil, huma.Error409Conflict("contact request already resolved")
			case errors.Is(err, contactsvc.ErrInvalidStatus):
				return nil, huma.Error422UnprocessableEntity("status must be accepted or rejected")
			default:
				return nil, huma.Error500InternalServerError("internal error")
			}
		}

		name := ""
		if prof, err := profiles.Get(ctx, updated.SenderID); err == nil {
			name = prof.FullName
		}
		return &TriageOutput{Body: toHTTPRequest(updated, name)}, nil
	})
}

// senderNames joins sender profiles onto the inbox. A failed join renders the
// inbox without names rather than failing the request.
func senderNames(ctx context.Context, profiles profilesvc.Service, rows []*contactsvc.ContactRequest) map[string]string {
	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, dup := seen[r.SenderID]; dup {
			continue
		}
		seen[r.SenderID] = struct{}{}
		ids = append(ids, r.SenderID)
	}

	out := make(map[string]string, len(ids))
	profs, err := profiles.GetMany(ctx, ids)
	if err != nil {
		applog.LogError(ctx, "Inbox sender join failed", err)
		return out
	}
	for id, p := range profs {
		out[id] = p.FullName
	}
	return out
}

func toHTTPRequest(r *contactsvc.ContactRequest, senderName string) Request {
	return Request{
		ID:         r.ID,
		SenderID:   r.SenderID,
		SenderName: senderName,
		Message:    r.Message,
		Status:     string(r.Status),
		CreatedAt:  timeutil.Time{Time: r.CreatedAt},
	}
}
