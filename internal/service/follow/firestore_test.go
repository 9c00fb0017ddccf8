package follow

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/kalakararena/api/internal/testutil"
)

func setupFirestoreTest(t *testing.T) (*FirestoreStore, func()) {
	t.Helper()

	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearEmulators(t)

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}

	store := NewFirestoreStore(client)
	cleanup := func() {
		testutil.ClearFirestore(t)
		_ = client.Close()
	}

	return store, cleanup
}

func TestFirestoreFollowIdempotent(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	for range 3 {
		if err := store.Follow(ctx, "viewer-1", "creator-1"); err != nil {
			t.Fatalf("follow: %v", err)
		}
	}

	rows, err := store.ListFollowing(ctx, "viewer-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row after replayed follows, got %d", len(rows))
	}
	if rows[0].ID != "viewer-1_creator-1" {
		t.Errorf("expected composite document ID, got %s", rows[0].ID)
	}
}

func TestFirestoreUnfollowIdempotent(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Follow(ctx, "viewer-1", "creator-1"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	for range 2 {
		if err := store.Unfollow(ctx, "viewer-1", "creator-1"); err != nil {
			t.Fatalf("unfollow: %v", err)
		}
	}

	following, err := store.IsFollowing(ctx, "viewer-1", "creator-1")
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if following {
		t.Fatal("expected relationship gone after unfollow")
	}
}

func TestFirestoreSelfFollowRejected(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	err := store.Follow(context.Background(), "viewer-1", "viewer-1")
	if !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
}

func TestFirestoreFollowingSet(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	for _, target := range []string{"creator-1", "creator-2"} {
		if err := store.Follow(ctx, "viewer-1", target); err != nil {
			t.Fatalf("follow %s: %v", target, err)
		}
	}
	if err := store.Follow(ctx, "viewer-2", "creator-3"); err != nil {
		t.Fatalf("follow from other viewer: %v", err)
	}

	set, err := store.FollowingSet(ctx, "viewer-1")
	if err != nil {
		t.Fatalf("following set: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 followed creators, got %d", len(set))
	}
	if _, ok := set["creator-3"]; ok {
		t.Error("another viewer's follow must not leak into the set")
	}
}
