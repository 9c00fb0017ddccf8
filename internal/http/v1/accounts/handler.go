// Package accounts exposes registration and sign-out endpoints.
package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/platform/auth"
	accountsvc "github.com/kalakararena/api/internal/service/account"
)

// Register wires account routes into the provided API router.
func Register(api huma.API, svc accountsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "sign-up",
		Method:        http.MethodPost,
		Path:          "/auth/signup",
		Summary:       "Register a new account",
		Description:   "Creates the account with the chosen type, its profile, and for creators an empty creator profile. Returns the path the client should land on.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
		if input.Body.Password != input.Body.ConfirmPassword {
			return nil, huma.Error422UnprocessableEntity("passwords do not match")
		}
		result, err := svc.SignUp(ctx, accountsvc.SignUpParams{
			Email:    input.Body.Email,
			Password: input.Body.Password,
			FullName: input.Body.FullName,
			UserType: input.Body.UserType,
		})
		if err != nil {
			return nil, mapAccountError(err)
		}
		return &SignUpOutput{
			Body: SignUpData{
				UserID:      result.UserID,
				UserType:    result.UserType,
				LandingPath: result.LandingPath,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "sign-out",
		Method:      http.MethodPost,
		Path:        "/auth/signout",
		Summary:     "Sign out everywhere",
		Description: "Revokes the account's refresh tokens. Already issued ID tokens remain valid until they expire.",
		Tags:        []string{"Auth"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *SignOutInput) (*SignOutOutput, error) {
		user := auth.UserFromContext(ctx)

		if err := svc.SignOut(ctx, user.UID); err != nil {
			return nil, mapAccountError(err)
		}
		return &SignOutOutput{Body: SignOutData{SignedOut: true}}, nil
	})
}

func mapAccountError(err error) error {
	switch {
	case errors.Is(err, accountsvc.ErrEmailTaken):
		return huma.Error409Conflict("email already registered")
	case errors.Is(err, accountsvc.ErrWeakPassword):
		return huma.Error422UnprocessableEntity("password must be at least 6 characters")
	case errors.Is(err, accountsvc.ErrInvalidUserType):
		return huma.Error422UnprocessableEntity("account type must be user or creator")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
