package account

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"

	platformauth "github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	"github.com/kalakararena/api/internal/service/creator"
	"github.com/kalakararena/api/internal/service/profile"
)

// identityClient is the slice of the Firebase Admin auth client this package
// uses, kept narrow so tests can stub it.
type identityClient interface {
	CreateUser(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// FirebaseService implements Service against the Firebase Admin SDK.
type FirebaseService struct {
	identity identityClient
	profiles profile.Service
	creators creator.Service
}

// NewFirebaseService creates the account service.
func NewFirebaseService(identity identityClient, profiles profile.Service, creators creator.Service) *FirebaseService {
	return &FirebaseService{identity: identity, profiles: profiles, creators: creators}
}

func (s *FirebaseService) SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error) {
	if params.UserType != platformauth.UserTypeUser && params.UserType != platformauth.UserTypeCreator {
		return nil, ErrInvalidUserType
	}
	if len(params.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	record, err := s.identity.CreateUser(ctx, (&fbauth.UserToCreate{}).
		Email(params.Email).
		Password(params.Password).
		DisplayName(params.FullName))
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailTaken
		}
		applog.LogAuditEvent(ctx, "signup", "", "account", params.Email, "failure",
			map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	uid := record.UID

	// The account type rides as a custom claim so the API can authorize
	// creator-only operations from the ID token alone.
	if err := s.identity.SetCustomUserClaims(ctx, uid, map[string]interface{}{
		"user_type": params.UserType,
	}); err != nil {
		applog.LogAuditEvent(ctx, "signup", uid, "account", uid, "failure",
			map[string]any{"stage": "claims", "error": err.Error()})
		return nil, fmt.Errorf("failed to set account type: %w", err)
	}

	if _, err := s.profiles.Create(ctx, uid, params.FullName); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	landing := LandingPathUser
	if params.UserType == platformauth.UserTypeCreator {
		if _, err := s.creators.Create(ctx, uid); err != nil {
			return nil, fmt.Errorf("failed to create creator profile: %w", err)
		}
		landing = LandingPathCreator
	}

	applog.LogAuditEvent(ctx, "signup", uid, "account", uid, "success",
		map[string]any{"user_type": params.UserType})
	return &SignUpResult{UserID: uid, UserType: params.UserType, LandingPath: landing}, nil
}

func (s *FirebaseService) SignOut(ctx context.Context, userID string) error {
	if err := s.identity.RevokeRefreshTokens(ctx, userID); err != nil {
		applog.LogAuditEvent(ctx, "signout", userID, "account", userID, "failure",
			map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	applog.LogAuditEvent(ctx, "signout", userID, "account", userID, "success", nil)
	return nil
}

// Compile-time interface check
var _ Service = (*FirebaseService)(nil)
