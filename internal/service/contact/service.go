package contact

import (
	"context"
	"errors"
	"time"
)

// Status of a contact request. Transitions run one way: pending is the
// initial state and accepted/rejected are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s ends the triage flow.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Service errors
var (
	ErrNotFound      = errors.New("contact request not found")
	ErrForbidden     = errors.New("contact request belongs to another creator")
	ErrEmptyMessage  = errors.New("message must not be empty")
	ErrSelfContact   = errors.New("cannot contact yourself")
	ErrResolved      = errors.New("contact request already resolved")
	ErrInvalidStatus = errors.New("invalid status transition")
)

// ContactRequest is an inquiry from a viewer to a creator.
type ContactRequest struct {
	ID        string
	SenderID  string
	CreatorID string
	Message   string
	Status    Status
	CreatedAt time.Time
}

// Service defines contact-request operations. Requests are created by the
// sender; only the receiving creator moves them out of pending, exactly once.
type Service interface {
	// Create inserts a pending request. The message is trimmed first; an
	// empty result returns ErrEmptyMessage, self-contact ErrSelfContact.
	Create(ctx context.Context, senderID, creatorID, message string) (*ContactRequest, error)
	// ListBySender returns the viewer's sent inquiries, newest first.
	ListBySender(ctx context.Context, senderID string) ([]*ContactRequest, error)
	// ListByCreator returns the creator's inbound requests, newest first.
	ListByCreator(ctx context.Context, creatorID string) ([]*ContactRequest, error)
	// UpdateStatus transitions a pending request to accepted or rejected.
	// Non-terminal targets return ErrInvalidStatus, requests owned by a
	// different creator ErrForbidden, already-resolved ones ErrResolved.
	UpdateStatus(ctx context.Context, creatorID, requestID string, status Status) (*ContactRequest, error)
}
