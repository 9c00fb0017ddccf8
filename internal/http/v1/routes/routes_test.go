package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	appmiddleware "github.com/kalakararena/api/internal/platform/middleware"
	"github.com/kalakararena/api/internal/platform/respond"
	"github.com/kalakararena/api/internal/platform/storage"
	accountsvc "github.com/kalakararena/api/internal/service/account"
	contactsvc "github.com/kalakararena/api/internal/service/contact"
	creatorsvc "github.com/kalakararena/api/internal/service/creator"
	"github.com/kalakararena/api/internal/service/directory"
	followsvc "github.com/kalakararena/api/internal/service/follow"
	postsvc "github.com/kalakararena/api/internal/service/post"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

func mockServices() Services {
	return Services{
		Accounts:  accountsvc.NewMockService(),
		Profiles:  profilesvc.NewMockService(),
		Creators:  creatorsvc.NewMockService(),
		Posts:     postsvc.NewMockService(),
		Follows:   followsvc.NewMockService(),
		Contacts:  contactsvc.NewMockService(),
		Directory: directory.NewMockService(),

		Store:         storage.NewMockStore(),
		AvatarsBucket: "test-avatars",
		PostsBucket:   "test-posts",
	}
}

func newTestAPI() (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(api, &auth.MockVerifier{User: auth.TestUser()}, mockServices())
	return router, api
}

func TestRegisterRoutesCreators(t *testing.T) {
	router, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/creators", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-creators")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterRoutesCategories(t *testing.T) {
	router, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-categories")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterRoutesInquiries(t *testing.T) {
	router, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/inquiries", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-inquiries")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterRoutesCoversAllPaths(t *testing.T) {
	_, api := newTestAPI()

	want := []string{
		"/auth/signup",
		"/auth/signout",
		"/categories",
		"/creators",
		"/creators/{id}",
		"/creators/{id}/follow",
		"/creators/{id}/contact",
		"/follows",
		"/profile",
		"/profile/avatar",
		"/posts",
		"/posts/{id}",
		"/requests",
		"/requests/{id}",
		"/inquiries",
	}
	paths := api.OpenAPI().Paths
	for _, p := range want {
		if _, exists := paths[p]; !exists {
			t.Errorf("path %s not registered", p)
		}
	}
	if len(paths) != len(want) {
		t.Errorf("expected %d paths, got %d", len(want), len(paths))
	}
}

func TestRegisterRoutesSecurityScheme(t *testing.T) {
	_, api := newTestAPI()

	scheme, exists := api.OpenAPI().Components.SecuritySchemes["bearerAuth"]
	if !exists {
		t.Fatal("bearerAuth security scheme not registered")
	}
	if scheme.Type != "http" || scheme.Scheme != "bearer" {
		t.Errorf("unexpected security scheme: %+v", scheme)
	}
}
