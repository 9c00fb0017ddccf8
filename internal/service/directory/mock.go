package directory

import "context"

// MockService implements Service with canned data for unit tests.
type MockService struct {
	Cards     []*Card
	PageByID  map[string]*Page
	Inquiries []*Inquiry

	// Err forces every operation to fail when set.
	Err error
}

// NewMockService creates an empty mock service.
func NewMockService() *MockService {
	return &MockService{PageByID: make(map[string]*Page)}
}

func (m *MockService) ListCreators(_ context.Context, _ string, filter Filter) ([]*Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return filterCards(m.Cards, filter), nil
}

func (m *MockService) GetCreator(_ context.Context, _, creatorID string) (*Page, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	page, exists := m.PageByID[creatorID]
	if !exists {
		return nil, ErrCreatorNotFound
	}
	return page, nil
}

func (m *MockService) FollowedCreators(_ context.Context, _ string) ([]*Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*Card, 0, len(m.Cards))
	for _, card := range m.Cards {
		if card.IsFollowing {
			out = append(out, card)
		}
	}
	return out, nil
}

func (m *MockService) SentInquiries(_ context.Context, _ string) ([]*Inquiry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Inquiries, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
