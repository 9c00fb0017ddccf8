package creator

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/kalakararena/api/internal/platform/logging"
)

const creatorProfilesCollection = "creator_profiles"

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

// firestoreCreatorProfile maps to the creator_profiles document structure.
// The document ID is the owning account's UID.
type firestoreCreatorProfile struct {
	Bio                  string    `firestore:"bio"`
	City                 string    `firestore:"city"`
	State                string    `firestore:"state"`
	Phone                string    `firestore:"phone"`
	WhatsApp             string    `firestore:"whatsapp"`
	Instagram            string    `firestore:"instagram"`
	Website              string    `firestore:"website"`
	Categories           []string  `firestore:"categories"`
	PortfolioDescription string    `firestore:"portfolio_description"`
	CreatedAt            time.Time `firestore:"created_at"`
	UpdatedAt            time.Time `firestore:"updated_at"`
}

func (fc firestoreCreatorProfile) toCreatorProfile(userID string) *CreatorProfile {
	categories := fc.Categories
	if categories == nil {
		categories = []string{}
	}
	return &CreatorProfile{
		UserID:               userID,
		Bio:                  fc.Bio,
		City:                 fc.City,
		State:                fc.State,
		Phone:                fc.Phone,
		WhatsApp:             fc.WhatsApp,
		Instagram:            fc.Instagram,
		Website:              fc.Website,
		Categories:           categories,
		PortfolioDescription: fc.PortfolioDescription,
		CreatedAt:            fc.CreatedAt,
		UpdatedAt:            fc.UpdatedAt,
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

// Create inserts an empty creator profile row.
func (s *FirestoreStore) Create(ctx context.Context, userID string) (*CreatorProfile, error) {
	docRef := s.client.Collection(creatorProfilesCollection).Doc(userID)
	now := time.Now().UTC()

	var result *CreatorProfile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fc := firestoreCreatorProfile{
			Categories: []string{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Set(docRef, fc); err != nil {
			return err
		}
		result = fc.toCreatorProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "creator_profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "creator_profile", userID, "success", nil)
	return result, nil
}

// Get retrieves a creator profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*CreatorProfile, error) {
	doc, err := s.client.Collection(creatorProfilesCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fc firestoreCreatorProfile
	if err := doc.DataTo(&fc); err != nil {
		return nil, err
	}
	return fc.toCreatorProfile(userID), nil
}

// GetMany fetches creator profiles in one batched read. An empty id list
// issues no query.
func (s *FirestoreStore) GetMany(ctx context.Context, userIDs []string) (map[string]*CreatorProfile, error) {
	result := make(map[string]*CreatorProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(userIDs))
	for _, id := range userIDs {
		refs = append(refs, s.client.Collection(creatorProfilesCollection).Doc(id))
	}

	docs, err := s.client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var fc firestoreCreatorProfile
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		result[doc.Ref.ID] = fc.toCreatorProfile(doc.Ref.ID)
	}
	return result, nil
}

// List returns every creator profile in backend iteration order.
func (s *FirestoreStore) List(ctx context.Context) ([]*CreatorProfile, error) {
	iter := s.client.Collection(creatorProfilesCollection).Documents(ctx)
	defer iter.Stop()

	var out []*CreatorProfile
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var fc firestoreCreatorProfile
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		out = append(out, fc.toCreatorProfile(doc.Ref.ID))
	}
	return out, nil
}

// Update merges the provided fields inside a transaction. Concurrent saves
// are last-write-wins per field set; there is no conflict detection.
func (s *FirestoreStore) Update(ctx context.Context, userID string, params UpdateParams) (*CreatorProfile, error) {
	docRef := s.client.Collection(creatorProfilesCollection).Doc(userID)

	var result *CreatorProfile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fc firestoreCreatorProfile
		if err := doc.DataTo(&fc); err != nil {
			return err
		}

		applyUpdate(&fc, params)
		fc.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fc); err != nil {
			return err
		}
		result = fc.toCreatorProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", userID, "creator_profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", userID, "creator_profile", userID, "success", nil)
	return result, nil
}

func applyUpdate(fc *firestoreCreatorProfile, params UpdateParams) {
	if params.Bio != nil {
		fc.Bio = *params.Bio
	}
	if params.City != nil {
		fc.City = *params.City
	}
	if params.State != nil {
		fc.State = *params.State
	}
	if params.Phone != nil {
		fc.Phone = *params.Phone
	}
	if params.WhatsApp != nil {
		fc.WhatsApp = *params.WhatsApp
	}
	if params.Instagram != nil {
		fc.Instagram = *params.Instagram
	}
	if params.Website != nil {
		fc.Website = *params.Website
	}
	if params.Categories != nil {
		fc.Categories = NormalizeCategories(*params.Categories)
	}
	if params.PortfolioDescription != nil {
		fc.PortfolioDescription = *params.PortfolioDescription
	}
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
