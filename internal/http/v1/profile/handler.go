// Package profile exposes the authenticated account's own record: reading it,
// the merged dashboard save, and the avatar upload.
package profile

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	"github.com/kalakararena/api/internal/platform/storage"
	creatorsvc "github.com/kalakararena/api/internal/service/creator"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

// Register wires profile routes into the provided API router. avatarsBucket
// is where uploaded avatars land; one object per user, overwritten in place.
func Register(
	api huma.API,
	profiles profilesvc.Service,
	creators creatorsvc.Service,
	store storage.Store,
	avatarsBucket string,
) {
	huma.Register(api, huma.Operation{
		OperationID: "get-own-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get own profile",
		Description: "Returns the authenticated account's profile, with creator details for creator accounts.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *GetInput) (*GetOutput, error) {
		user := auth.UserFromContext(ctx)

		prof, err := profiles.Get(ctx, user.UID)
		if err != nil {
			return nil, mapProfileError(err)
		}
		details := loadCreatorDetails(ctx, creators, user)
		return &GetOutput{Body: toHTTPProfile(prof, user.UserType, details)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-own-profile",
		Method:      http.MethodPatch,
		Path:        "/profile",
		Summary:     "Save profile and creator details",
		Description: "Applies the dashboard form in one request. The display name and the creator details are saved independently; when one part fails the other still applies and the failure is reported in notices.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
		user := auth.UserFromContext(ctx)

		nameRequested := input.Body.FullName != nil
		detailsRequested := hasCreatorFields(input)
		if !nameRequested && !detailsRequested {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}
		if detailsRequested && !user.IsCreator() {
			return nil, huma.Error403Forbidden("creator details require a creator account")
		}

		var (
			prof    *profilesvc.Profile
			details *creatorsvc.CreatorProfile
			notices []string
			nameErr error
			detErr  error
		)

		if nameRequested {
			prof, nameErr = profiles.UpdateFullName(ctx, user.UID, *input.Body.FullName)
		}
		if detailsRequested {
			params := creatorsvc.UpdateParams{
				Bio:                  input.Body.Bio,
				City:                 input.Body.City,
				State:                input.Body.State,
				Phone:                input.Body.Phone,
				WhatsApp:             input.Body.WhatsApp,
				Instagram:            input.Body.Instagram,
				Website:              input.Body.Website,
				PortfolioDescription: input.Body.PortfolioDescription,
			}
			if input.Body.Categories != nil {
				normalized := creatorsvc.NormalizeCategories(*input.Body.Categories)
				params.Categories = &normalized
			}
			details, detErr = creators.Update(ctx, user.UID, params)
		}

		// Both parts failing is a failed request; one part failing is a
		// partial save the client needs to surface.
		if nameErr != nil && (!detailsRequested || detErr != nil) {
			return nil, mapProfileError(nameErr)
		}
		if detErr != nil && !nameRequested {
			return nil, mapCreatorError(detErr)
		}
		if nameErr != nil {
			applog.LogError(ctx, "Profile name save failed", nameErr)
			notices = append(notices, "name could not be saved")
		}
		if detErr != nil {
			applog.LogError(ctx, "Creator details save failed", detErr)
			notices = append(notices, "creator details could not be saved")
		}

		if prof == nil {
			var err error
			prof, err = profiles.Get(ctx, user.UID)
			if err != nil {
				return nil, mapProfileError(err)
			}
		}
		if details == nil && user.IsCreator() {
			details = loadCreatorDetails(ctx, creators, user)
		}
		return &UpdateOutput{
			Body: UpdateData{
				Profile: toHTTPProfile(prof, user.UserType, details),
				Notices: notices,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "upload-avatar",
		Method:      http.MethodPut,
		Path:        "/profile/avatar",
		Summary:     "Upload avatar",
		Description: "Stores the image under a per-user path, replacing any previous avatar, and records its public URL on the profile.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *AvatarInput) (*AvatarOutput, error) {
		user := auth.UserFromContext(ctx)

		file := input.RawBody.Data().Avatar
		contentType, ok := storage.ImageContentType(file.Filename)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unsupported image type")
		}

		objectPath := fmt.Sprintf("%s/avatar.%s", user.UID, storage.Ext(file.Filename))
		publicURL, err := store.Upload(ctx, avatarsBucket, objectPath, contentType, file)
		if err != nil {
			applog.LogError(ctx, "Avatar upload failed", err)
			return nil, huma.Error500InternalServerError("failed to store avatar")
		}

		if _, err := profiles.SetAvatarURL(ctx, user.UID, publicURL); err != nil {
			return nil, mapProfileError(err)
		}
		return &AvatarOutput{Body: AvatarData{AvatarURL: publicURL}}, nil
	})
}

// loadCreatorDetails fetches the creator row for creator accounts. A missing
// or unreadable row renders the profile without details rather than failing.
func loadCreatorDetails(ctx context.Context, creators creatorsvc.Service, user *auth.User) *creatorsvc.CreatorProfile {
	if !user.IsCreator() {
		return nil
	}
	details, err := creators.Get(ctx, user.UID)
	if err != nil {
		if !errors.Is(err, creatorsvc.ErrNotFound) {
			applog.LogError(ctx, "Creator details lookup failed", err)
		}
		return nil
	}
	return details
}

func hasCreatorFields(input *UpdateInput) bool {
	return input.Body.Bio != nil ||
		input.Body.City != nil ||
		input.Body.State != nil ||
		input.Body.Phone != nil ||
		input.Body.WhatsApp != nil ||
		input.Body.Instagram != nil ||
		input.Body.Website != nil ||
		input.Body.Categories != nil ||
		input.Body.PortfolioDescription != nil
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func mapCreatorError(err error) error {
	switch {
	case errors.Is(err, creatorsvc.ErrNotFound):
		return huma.Error404NotFound("creator profile not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
