// Package routes wires every versioned endpoint into one API router.
package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kalakararena/api/internal/http/v1/accounts"
	"github.com/kalakararena/api/internal/http/v1/categories"
	creatorshandler "github.com/kalakararena/api/internal/http/v1/creators"
	"github.com/kalakararena/api/internal/http/v1/inquiries"
	"github.com/kalakararena/api/internal/http/v1/posts"
	profilehandler "github.com/kalakararena/api/internal/http/v1/profile"
	"github.com/kalakararena/api/internal/http/v1/requests"
	"github.com/kalakararena/api/internal/platform/auth"
	"github.com/kalakararena/api/internal/platform/storage"
	accountsvc "github.com/kalakararena/api/internal/service/account"
	contactsvc "github.com/kalakararena/api/internal/service/contact"
	creatorsvc "github.com/kalakararena/api/internal/service/creator"
	"github.com/kalakararena/api/internal/service/directory"
	followsvc "github.com/kalakararena/api/internal/service/follow"
	postsvc "github.com/kalakararena/api/internal/service/post"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

// Services bundles everything the handlers depend on.
type Services struct {
	Accounts  accountsvc.Service
	Profiles  profilesvc.Service
	Creators  creatorsvc.Service
	Posts     postsvc.Service
	Follows   followsvc.Service
	Contacts  contactsvc.Service
	Directory directory.Service

	Store         storage.Store
	AvatarsBucket string
	PostsBucket   string
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, verifier auth.Verifier, svcs Services) {
	prefix := apiPrefix(api)

	registerSecurityScheme(api)
	api.UseMiddleware(auth.NewMiddleware(api, verifier))

	accounts.Register(api, svcs.Accounts)
	categories.Register(api)
	creatorshandler.Register(api, svcs.Directory, svcs.Follows, svcs.Contacts, prefix)
	profilehandler.Register(api, svcs.Profiles, svcs.Creators, svcs.Store, svcs.AvatarsBucket)
	posts.Register(api, svcs.Posts, svcs.Store, svcs.PostsBucket)
	requests.Register(api, svcs.Contacts, svcs.Profiles)
	inquiries.Register(api, svcs.Directory)
}

func registerSecurityScheme(api huma.API) {
	oapi := api.OpenAPI()
	if oapi.Components == nil {
		oapi.Components = &huma.Components{}
	}
	if oapi.Components.SecuritySchemes == nil {
		oapi.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	oapi.Components.SecuritySchemes["bearerAuth"] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
