package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/kalakararena/api/internal/platform/logging"
)

const profilesCollection = "profiles"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreProfile maps to the profiles document structure. The document ID
// is the owning account's UID.
type firestoreProfile struct {
	FullName  string    `firestore:"full_name"`
	AvatarURL string    `firestore:"avatar_url"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (fp firestoreProfile) toProfile(userID string) *Profile {
	return &Profile{
		UserID:    userID,
		FullName:  fp.FullName,
		AvatarURL: fp.AvatarURL,
		CreatedAt: fp.CreatedAt,
		UpdatedAt: fp.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create creates a profile row using a transaction to prevent duplicates.
func (s *FirestoreStore) Create(ctx context.Context, userID, fullName string) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)
	now := time.Now().UTC()

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fp := firestoreProfile{
			FullName:  strings.TrimSpace(fullName),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "profile", userID, "success", nil)
	return result, nil
}

// Get retrieves a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Profile, error) {
	doc, err := s.client.Collection(profilesCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return fp.toProfile(userID), nil
}

// GetMany fetches profiles for the given ids in one batched read. An empty
// id list issues no query.
func (s *FirestoreStore) GetMany(ctx context.Context, userIDs []string) (map[string]*Profile, error) {
	result := make(map[string]*Profile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(userIDs))
	for _, id := range userIDs {
		refs = append(refs, s.client.Collection(profilesCollection).Doc(id))
	}

	docs, err := s.client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return nil, err
		}
		result[doc.Ref.ID] = fp.toProfile(doc.Ref.ID)
	}
	return result, nil
}

// UpdateFullName updates the display name inside a transaction.
func (s *FirestoreStore) UpdateFullName(ctx context.Context, userID, fullName string) (*Profile, error) {
	return s.update(ctx, userID, "update", func(fp *firestoreProfile) {
		fp.FullName = strings.TrimSpace(fullName)
	})
}

// SetAvatarURL writes the public URL of a freshly uploaded avatar object.
func (s *FirestoreStore) SetAvatarURL(ctx context.Context, userID, avatarURL string) (*Profile, error) {
	return s.update(ctx, userID, "set_avatar", func(fp *firestoreProfile) {
		fp.AvatarURL = avatarURL
	})
}

func (s *FirestoreStore) update(ctx context.Context, userID, action string, mutate func(*firestoreProfile)) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return err
		}
		mutate(&fp)
		fp.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, action, userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, action, userID, "profile", userID, "success", nil)
	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
