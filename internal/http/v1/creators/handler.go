// Package creators exposes the public directory: browse and search creators,
// view a creator's page, follow them, and send contact requests.
package creators

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/platform/auth"
	"github.com/kalakararena/api/internal/platform/pagination"
	"github.com/kalakararena/api/internal/platform/timeutil"
	contactsvc "github.com/kalakararena/api/internal/service/contact"
	"github.com/kalakararena/api/internal/service/directory"
	followsvc "github.com/kalakararena/api/internal/service/follow"
)

const cursorType = "creator"

// Register wires creator directory routes into the provided API router.
func Register(
	api huma.API,
	dir directory.Service,
	follows followsvc.Service,
	contacts contactsvc.Service,
	prefix string,
) {
	huma.Register(api, huma.Operation{
		OperationID: "list-creators",
		Method:      http.MethodGet,
		Path:        "/creators",
		Summary:     "Browse creators",
		Description: "Returns creator cards with up to three recent posts each. Text and category filters combine; both must match. Signed-in viewers also get follow state.",
		Tags:        []string{"Creators"},
		Metadata: map[string]any{
			auth.MetadataOptional: true,
		},
	}, func(ctx context.Context, input *ListInput) (*ListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		viewerID := ""
		if user := auth.UserFromContext(ctx); user != nil {
			viewerID = user.UID
		}

		cards, err := dir.ListCreators(ctx, viewerID, directory.Filter{
			Query:    input.Query,
			Category: input.Category,
		})
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		query := url.Values{}
		if input.Query != "" {
			query.Set("q", input.Query)
		}
		if input.Category != "" {
			query.Set("category", input.Category)
		}

		result := pagination.Paginate(
			cards,
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(card *directory.Card) string { return card.UserID },
			prefix+"/creators",
			query,
		)

		out := make([]Card, 0, len(result.Items))
		for _, card := range result.Items {
			out = append(out, toCard(card))
		}
		return &ListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Creators: out,
				Total:    result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-creator",
		Method:      http.MethodGet,
		Path:        "/creators/{id}",
		Summary:     "Get a creator's page",
		Description: "Returns the creator's identity, details, and full portfolio, newest post first.",
		Tags:        []string{"Creators"},
		Metadata: map[string]any{
			auth.MetadataOptional: true,
		},
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		viewerID := ""
		if user := auth.UserFromContext(ctx); user != nil {
			viewerID = user.UID
		}

		page, err := dir.GetCreator(ctx, viewerID, input.ID)
		if err != nil {
			if errors.Is(err, directory.ErrCreatorNotFound) {
				return nil, huma.Error404NotFound("creator not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &GetOutput{Body: toPage(page)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "follow-creator",
		Method:      http.MethodPut,
		Path:        "/creators/{id}/follow",
		Summary:     "Follow a creator",
		Description: "Creates the follow relationship. Following an already-followed creator is a no-op.",
		Tags:        []string{"Creators"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *FollowInput) (*FollowOutput, error) {
		user := auth.UserFromContext(ctx)

		if err := follows.Follow(ctx, user.UID, input.ID); err != nil {
			if errors.Is(err, followsvc.ErrSelfFollow) {
				return nil, huma.Error422UnprocessableEntity("cannot follow yourself")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &FollowOutput{Body: FollowData{Following: true}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "unfollow-creator",
		Method:      http.MethodDelete,
		Path:        "/creators/{id}/follow",
		Summary:     "Unfollow a creator",
		Description: "Removes the follow relationship. Unfollowing a creator you do not follow is a no-op.",
		Tags:        []string{"Creators"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UnfollowInput) (*FollowOutput, error) {
		user := auth.UserFromContext(ctx)

		if err := follows.Unfollow(ctx, user.UID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &FollowOutput{Body: FollowData{Following: false}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-followed-creators",
		Method:      http.MethodGet,
		Path:        "/follows",
		Summary:     "List followed creators",
		Description: "Returns cards for the creators the authenticated viewer follows.",
		Tags:        []string{"Creators"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *FollowedInput) (*FollowedOutput, error) {
		user := auth.UserFromContext(ctx)

		cards, err := dir.FollowedCreators(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := make([]Card, 0, len(cards))
		for _, card := range cards {
			out = append(out, toCard(card))
		}
		return &FollowedOutput{
			Body: FollowedData{Creators: out, Total: len(out)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "contact-creator",
		Method:        http.MethodPost,
		Path:          "/creators/{id}/contact",
		Summary:       "Send a contact request",
		Description:   "Creates a pending contact request to the creator. The creator sees it in their inbox and accepts or rejects it.",
		Tags:          []string{"Creators"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ContactInput) (*ContactOutput, error) {
		user := auth.UserFromContext(ctx)

		request, err := contacts.Create(ctx, user.UID, input.ID, input.Body.Message)
		if err != nil {
			switch {
			case errors.Is(err, contactsvc.ErrEmptyMessage):
				return nil, huma.Error422UnprocessableEntity("message must not be empty")
			case errors.Is(err, contactsvc.ErrSelfContact):
				return nil, huma.Error422UnprocessableEntity("cannot contact yourself")
			default:
				return nil, huma.Error500InternalServerError("internal error")
			}
		}
		return &ContactOutput{
			Body: ContactData{
				ID:        request.ID,
				CreatorID: request.CreatorID,
				Message:   request.Message,
				Status:    string(request.Status),
				CreatedAt: timeutil.Time{Time: request.CreatedAt},
			},
		}, nil
	})
}
