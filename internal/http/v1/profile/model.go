package profile

import (
	"github.com/kalakararena/api/internal/platform/timeutil"
	creatorsvc "github.com/kalakararena/api/internal/service/creator"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

// CreatorDetails is the creator-only slice of the account, shown and edited
// from the dashboard. Phone and WhatsApp appear here because the owner is
// reading their own record.
type CreatorDetails struct {
	Bio                  string   `json:"bio"                  doc:"Short bio"`
	City                 string   `json:"city"                 doc:"City"`
	State                string   `json:"state"                doc:"State"`
	Phone                string   `json:"phone"                doc:"Phone number"`
	WhatsApp             string   `json:"whatsapp"             doc:"WhatsApp number"`
	Instagram            string   `json:"instagram"            doc:"Instagram handle"`
	Website              string   `json:"website"              doc:"Website URL"`
	Categories           []string `json:"categories"           doc:"Craft categories"`
	PortfolioDescription string   `json:"portfolioDescription" doc:"Long-form portfolio text"`
}

// Profile is the authenticated account's own record.
type Profile struct {
	UserID    string          `json:"userId"            doc:"Account identifier"`
	FullName  string          `json:"fullName"          doc:"Display name"       example:"Meera Sharma"`
	AvatarURL string          `json:"avatarUrl"         doc:"Public avatar URL"`
	UserType  string          `json:"userType"          doc:"Account type"       example:"creator"`
	Creator   *CreatorDetails `json:"creator,omitempty" doc:"Creator details, absent for regular accounts"`
	CreatedAt timeutil.Time   `json:"createdAt"         doc:"Creation timestamp"    example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time   `json:"updatedAt"         doc:"Last update timestamp" example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPProfile(p *profilesvc.Profile, userType string, c *creatorsvc.CreatorProfile) Profile {
	out := Profile{
		UserID:    p.UserID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		UserType:  userType,
		CreatedAt: timeutil.Time{Time: p.CreatedAt},
		UpdatedAt: timeutil.Time{Time: p.UpdatedAt},
	}
	if c != nil {
		categories := c.Categories
		if categories == nil {
			categories = []string{}
		}
		out.Creator = &CreatorDetails{
			Bio:                  c.Bio,
			City:                 c.City,
			State:                c.State,
			Phone:                c.Phone,
			WhatsApp:             c.WhatsApp,
			Instagram:            c.Instagram,
			Website:              c.Website,
			Categories:           categories,
			PortfolioDescription: c.PortfolioDescription,
		}
	}
	return out
}
