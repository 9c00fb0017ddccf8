package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/kalakararena/api/internal/platform/logging"
)

const contactRequestsCollection = "contact_requests"

func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrResolved):
		return "already_resolved"
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	default:
		return "internal_error"
	}
}

// firestoreContactRequest maps to the contact_requests document structure.
type firestoreContactRequest struct {
	SenderID  string    `firestore:"sender_id"`
	CreatorID string    `firestore:"creator_id"`
	Message   string    `firestore:"message"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (fc firestoreContactRequest) toContactRequest(id string) *ContactRequest {
	return &ContactRequest{
		ID:        id,
		SenderID:  fc.SenderID,
		CreatorID: fc.CreatorID,
		Message:   fc.Message,
		Status:    Status(fc.Status),
		CreatedAt: fc.CreatedAt,
	}
}

// FirestoreStore implements Service using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create inserts a pending request.
func (s *FirestoreStore) Create(ctx context.Context, senderID, creatorID, message string) (*ContactRequest, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == creatorID {
		return nil, ErrSelfContact
	}

	id := uuid.NewString()
	fc := firestoreContactRequest{
		SenderID:  senderID,
		CreatorID: creatorID,
		Message:   message,
		Status:    string(StatusPending),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.client.Collection(contactRequestsCollection).Doc(id).Create(ctx, fc); err != nil {
		applog.LogAuditEvent(ctx, "create", senderID, "contact_request", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", senderID, "contact_request", id, "success", nil)
	return fc.toContactRequest(id), nil
}

// ListBySender returns sent inquiries, newest first.
func (s *FirestoreStore) ListBySender(ctx context.Context, senderID string) ([]*ContactRequest, error) {
	return s.list(ctx, "sender_id", senderID)
}

// ListByCreator returns inbound requests, newest first.
func (s *FirestoreStore) ListByCreator(ctx context.Context, creatorID string) ([]*ContactRequest, error) {
	return s.list(ctx, "creator_id", creatorID)
}

func (s *FirestoreStore) list(ctx context.Context, field, value string) ([]*ContactRequest, error) {
	iter := s.client.Collection(contactRequestsCollection).
		Where(field, "==", value).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []*ContactRequest
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var fc firestoreContactRequest
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		out = append(out, fc.toContactRequest(doc.Ref.ID))
	}
	return out, nil
}

// UpdateStatus transitions a pending request to a terminal status inside a
// transaction, so a replayed triage click cannot flip a resolved request.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, creatorID, requestID string, newStatus Status) (*ContactRequest, error) {
	if !newStatus.Terminal() {
		return nil, ErrInvalidStatus
	}

	docRef := s.client.Collection(contactRequestsCollection).Doc(requestID)

	var result *ContactRequest

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fc firestoreContactRequest
		if err := doc.DataTo(&fc); err != nil {
			return err
		}
		if fc.CreatorID != creatorID {
			return ErrForbidden
		}
		if Status(fc.Status) != StatusPending {
			return ErrResolved
		}

		fc.Status = string(newStatus)
		if err := tx.Set(docRef, fc); err != nil {
			return err
		}
		result = fc.toContactRequest(requestID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "triage", creatorID, "contact_request", requestID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "triage", creatorID, "contact_request", requestID, "success",
		map[string]any{"status": string(newStatus)})
	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
