package contact

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusPending, true},
		{StatusAccepted, true},
		{StatusRejected, true},
		{Status("resolved"), false},
		{Status(""), false},
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.valid {
			t.Errorf("Valid(%q): expected %v, got %v", tt.status, tt.valid, got)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("pending must not be terminal")
	}
	if !StatusAccepted.Terminal() || !StatusRejected.Terminal() {
		t.Error("accepted and rejected must be terminal")
	}
}

func TestCreateTrimsAndValidates(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()

	r, err := svc.Create(ctx, "sender-1", "creator-1", "  hello  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Message != "hello" {
		t.Errorf("expected trimmed message, got %q", r.Message)
	}
	if r.Status != StatusPending {
		t.Errorf("expected pending, got %s", r.Status)
	}

	if _, err := svc.Create(ctx, "sender-1", "creator-1", "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := svc.Create(ctx, "same", "same", "hi"); !errors.Is(err, ErrSelfContact) {
		t.Errorf("expected ErrSelfContact, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to accepted", func(t *testing.T) {
		svc := NewMockService()
		r, _ := svc.Create(ctx, "sender-1", "creator-1", "hi")
		updated, err := svc.UpdateStatus(ctx, "creator-1", r.ID, StatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != StatusAccepted {
			t.Errorf("expected accepted, got %s", updated.Status)
		}
	})

	t.Run("resolved stays resolved", func(t *testing.T) {
		svc := NewMockService()
		r, _ := svc.Create(ctx, "sender-1", "creator-1", "hi")
		if _, err := svc.UpdateStatus(ctx, "creator-1", r.ID, StatusRejected); err != nil {
			t.Fatalf("first transition: %v", err)
		}
		if _, err := svc.UpdateStatus(ctx, "creator-1", r.ID, StatusAccepted); !errors.Is(err, ErrResolved) {
			t.Errorf("expected ErrResolved, got %v", err)
		}
	})

	t.Run("wrong creator", func(t *testing.T) {
		svc := NewMockService()
		r, _ := svc.Create(ctx, "sender-1", "creator-1", "hi")
		if _, err := svc.UpdateStatus(ctx, "creator-2", r.ID, StatusAccepted); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("pending is not a target", func(t *testing.T) {
		svc := NewMockService()
		r, _ := svc.Create(ctx, "sender-1", "creator-1", "hi")
		if _, err := svc.UpdateStatus(ctx, "creator-1", r.ID, StatusPending); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("missing request", func(t *testing.T) {
		svc := NewMockService()
		if _, err := svc.UpdateStatus(ctx, "creator-1", "ghost", StatusAccepted); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListBySenderNewestFirst(t *testing.T) {
	svc := NewMockService()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.Seed(&ContactRequest{ID: "r1", SenderID: "sender-1", CreatorID: "creator-1", Message: "first", Status: StatusPending, CreatedAt: base})
	svc.Seed(&ContactRequest{ID: "r2", SenderID: "sender-1", CreatorID: "creator-2", Message: "second", Status: StatusPending, CreatedAt: base.Add(time.Hour)})
	svc.Seed(&ContactRequest{ID: "r3", SenderID: "someone-else", CreatorID: "creator-1", Message: "other", Status: StatusPending, CreatedAt: base})

	rows, err := svc.ListBySender(context.Background(), "sender-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "r2" || rows[1].ID != "r1" {
		t.Errorf("expected newest first, got %s,%s", rows[0].ID, rows[1].ID)
	}
}
