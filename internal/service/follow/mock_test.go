package follow

import (
	"context"
	"errors"
	"testing"
)

func TestFollowIdempotent(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()

	for range 3 {
		if err := svc.Follow(ctx, "viewer-1", "creator-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if svc.Count() != 1 {
		t.Errorf("expected 1 relationship after replayed follows, got %d", svc.Count())
	}

	following, err := svc.IsFollowing(ctx, "viewer-1", "creator-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !following {
		t.Error("expected follow state")
	}
}

func TestUnfollowIdempotent(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()

	if err := svc.Follow(ctx, "viewer-1", "creator-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 2 {
		if err := svc.Unfollow(ctx, "viewer-1", "creator-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if svc.Count() != 0 {
		t.Errorf("expected 0 relationships, got %d", svc.Count())
	}
}

func TestSelfFollowRejected(t *testing.T) {
	svc := NewMockService()

	if err := svc.Follow(context.Background(), "same", "same"); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("expected ErrSelfFollow, got %v", err)
	}
}

func TestFollowingSet(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()
	_ = svc.Follow(ctx, "viewer-1", "creator-1")
	_ = svc.Follow(ctx, "viewer-1", "creator-2")
	_ = svc.Follow(ctx, "viewer-2", "creator-3")

	set, err := svc.FollowingSet(ctx, "viewer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(set))
	}
	if _, ok := set["creator-1"]; !ok {
		t.Error("expected creator-1 in set")
	}
	if _, ok := set["creator-3"]; ok {
		t.Error("creator-3 belongs to another viewer")
	}
}
