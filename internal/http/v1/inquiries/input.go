package inquiries

// ListInput for GET /inquiries (no parameters needed)
type ListInput struct{}
