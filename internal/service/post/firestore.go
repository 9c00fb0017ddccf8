package post

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

const postsCollection = "posts"

// inQueryChunk caps the number of values per Firestore "in" filter.
const inQueryChunk = 10

func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "internal_error"
	}
}

// firestorePost maps to the posts document structure.
type firestorePost struct {
	UserID      string    `firestore:"user_id"`
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	ImageURL    string    `firestore:"image_url"`
	Category    string    `firestore:"category"`
	CreatedAt   time.Time `firestore:"created_at"`
}

func (fp firestorePost) toPost(id string) *Post {
	return &Post{
		ID:          id,
		UserID:      fp.UserID,
		Title:       fp.Title,
		Description: fp.Description,
		ImageURL:    fp.ImageURL,
		Category:    fp.Category,
		CreatedAt:   fp.CreatedAt,
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

// Create inserts a post row with a fresh ID.
func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*Post, error) {
	id := uuid.NewString()
	fp := firestorePost{
		UserID:      userID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		ImageURL:    params.ImageURL,
		Category:    params.Category,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.client.Collection(postsCollection).Doc(id).Create(ctx, fp); err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "post", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "post", id, "success", nil)
	return fp.toPost(id), nil
}

// Delete removes a post after checking ownership inside a transaction.
func (s *FirestoreStore) Delete(ctx context.Context, userID, postID string) (*Post, error) {
	docRef := s.client.Collection(postsCollection).Doc(postID)

	var deleted *Post

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestorePost
		if err := doc.DataTo(&fp); err != nil {
			return err
		}
		if fp.UserID != userID {
			return ErrForbidden
		}
		deleted = fp.toPost(postID)
		return tx.Delete(docRef)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "delete", userID, "post", postID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "delete", userID, "post", postID, "success", nil)
	return deleted, nil
}

// ListByCreator returns one creator's posts, newest first.
func (s *FirestoreStore) ListByCreator(ctx context.Context, userID string) ([]*Post, error) {
	iter := s.client.Collection(postsCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return collectPosts(iter)
}

// RecentByCreators fetches newest-first posts for a set of creators and
// truncates to perCreator per creator. Firestore caps "in" filters, so the
// id list is chunked.
func (s *FirestoreStore) RecentByCreators(ctx context.Context, userIDs []string, perCreator int) (map[string][]*Post, error) {
	result := make(map[string][]*Post, len(userIDs))
	if len(userIDs) == 0 || perCreator <= 0 {
		return result, nil
	}

	for start := 0; start < len(userIDs); start += inQueryChunk {
		end := min(start+inQueryChunk, len(userIDs))
		iter := s.client.Collection(postsCollection).
			Where("user_id", "in", userIDs[start:end]).
			OrderBy("created_at", firestore.Desc).
			Documents(ctx)

		posts, err := collectPosts(iter)
		iter.Stop()
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			if len(result[p.UserID]) < perCreator {
				result[p.UserID] = append(result[p.UserID], p)
			}
		}
	}
	return result, nil
}

func collectPosts(iter *firestore.DocumentIterator) ([]*Post, error) {
	var out []*Post
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var fp firestorePost
		if err := doc.DataTo(&fp); err != nil {
			return nil, err
		}
		out = append(out, fp.toPost(doc.Ref.ID))
	}
	return out, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
