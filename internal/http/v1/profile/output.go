package profile

// GetOutput for GET /profile
type GetOutput struct {
	Body Profile
}

// UpdateData is the saved profile plus any parts of the save that failed.
type UpdateData struct {
	Profile Profile  `json:"profile"           doc:"Profile after the save"`
	Notices []string `json:"notices,omitempty" doc:"Parts of the save that did not apply" example:"[\"creator details could not be saved\"]"`
}

// UpdateOutput for PATCH /profile
type UpdateOutput struct {
	Body UpdateData
}

// AvatarData is the stored avatar location.
type AvatarData struct {
	AvatarURL string `json:"avatarUrl" doc:"Public avatar URL"`
}

// AvatarOutput for PUT /profile/avatar
type AvatarOutput struct {
	Body AvatarData
}
