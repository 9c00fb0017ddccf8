package follow

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

const followsCollection = "follows"

// firestoreFollow maps to the follows document structure. The document ID is
// the composite "{follower}_{following}", which makes uniqueness per pair a
// property of the store rather than of client sequencing.
type firestoreFollow struct {
	FollowerID  string    `firestore:"follower_id"`
	FollowingID string    `firestore:"following_id"`
	CreatedAt   time.Time `firestore:"created_at"`
}

func followDocID(followerID, followingID string) string {
	return followerID + "_" + followingID
}

// FirestoreStore implements Service using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Follow creates the relationship row. A concurrent duplicate lands on the
// same document ID, so the second write is absorbed instead of duplicated.
func (s *FirestoreStore) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	docRef := s.client.Collection(followsCollection).Doc(followDocID(followerID, followingID))
	_, err := docRef.Create(ctx, firestoreFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		applog.LogAuditEvent(ctx, "follow", followerID, "follow", followingID, "failure", nil)
		return err
	}

	applog.LogAuditEvent(ctx, "follow", followerID, "follow", followingID, "success", nil)
	return nil
}

// Unfollow removes the relationship row if present.
func (s *FirestoreStore) Unfollow(ctx context.Context, followerID, followingID string) error {
	docRef := s.client.Collection(followsCollection).Doc(followDocID(followerID, followingID))
	if _, err := docRef.Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
		applog.LogAuditEvent(ctx, "unfollow", followerID, "follow", followingID, "failure", nil)
		return err
	}

	applog.LogAuditEvent(ctx, "unfollow", followerID, "follow", followingID, "success", nil)
	return nil
}

// IsFollowing reports existence of the relationship row.
func (s *FirestoreStore) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	doc, err := s.client.Collection(followsCollection).Doc(followDocID(followerID, followingID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return doc.Exists(), nil
}

// ListFollowing returns the viewer's follow rows.
func (s *FirestoreStore) ListFollowing(ctx context.Context, followerID string) ([]*Follow, error) {
	iter := s.client.Collection(followsCollection).
		Where("follower_id", "==", followerID).
		Documents(ctx)
	defer iter.Stop()

	var out []*Follow
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var ff firestoreFollow
		if err := doc.DataTo(&ff); err != nil {
			return nil, err
		}
		out = append(out, &Follow{
			ID:          doc.Ref.ID,
			FollowerID:  ff.FollowerID,
			FollowingID: ff.FollowingID,
			CreatedAt:   ff.CreatedAt,
		})
	}
	return out, nil
}

// FollowingSet returns the followed ids for membership tests.
func (s *FirestoreStore) FollowingSet(ctx context.Context, followerID string) (map[string]struct{}, error) {
	follows, err := s.ListFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(follows))
	for _, f := range follows {
		set[f.FollowingID] = struct{}{}
	}
	return set, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
