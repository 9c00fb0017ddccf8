package profile

import "github.com/danielgtaylor/huma/v2"

// GetInput for GET /profile (no body needed)
type GetInput struct{}

// UpdateInput for PATCH /profile. The dashboard sends the whole form in one
// request; name and creator details are updated independently.
type UpdateInput struct {
	Body struct {
		FullName             *string   `json:"fullName,omitempty"             minLength:"1" maxLength:"100"  doc:"Display name"          example:"Meera Sharma"`
		Bio                  *string   `json:"bio,omitempty"                  maxLength:"500"                doc:"Short bio"`
		City                 *string   `json:"city,omitempty"                 maxLength:"100"                doc:"City"                  example:"Jaipur"`
		State                *string   `json:"state,omitempty"                maxLength:"100"                doc:"State"                 example:"Rajasthan"`
		Phone                *string   `json:"phone,omitempty"                maxLength:"20"                 doc:"Phone number"`
		WhatsApp             *string   `json:"whatsapp,omitempty"             maxLength:"20"                 doc:"WhatsApp number"`
		Instagram            *string   `json:"instagram,omitempty"            maxLength:"100"                doc:"Instagram handle"`
		Website              *string   `json:"website,omitempty"              maxLength:"200"                doc:"Website URL"`
		Categories           *[]string `json:"categories,omitempty"           maxItems:"12"                  doc:"Craft categories"`
		PortfolioDescription *string   `json:"portfolioDescription,omitempty" maxLength:"2000"               doc:"Long-form portfolio text"`
	}
}

// AvatarFormData is the multipart payload for the avatar upload.
type AvatarFormData struct {
	Avatar huma.FormFile `form:"avatar" contentType:"image/jpeg,image/png,image/gif,image/webp" required:"true" doc:"Avatar image file"`
}

// AvatarInput for PUT /profile/avatar
type AvatarInput struct {
	RawBody huma.MultipartFormFiles[AvatarFormData]
}
