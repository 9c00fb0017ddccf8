package creators

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	appmiddleware "github.com/kalakararena/api/internal/platform/middleware"
	"github.com/kalakararena/api/internal/platform/pagination"
	"github.com/kalakararena/api/internal/platform/respond"
	contactsvc "github.com/kalakararena/api/internal/service/contact"
	"github.com/kalakararena/api/internal/service/directory"
	followsvc "github.com/kalakararena/api/internal/service/follow"
)

type testEnv struct {
	dir      *directory.MockService
	follows  *followsvc.MockService
	contacts *contactsvc.MockService
	router   chi.Router
}

func newTestEnv(verifier auth.Verifier) *testEnv {
	env := &testEnv{
		dir:      directory.NewMockService(),
		follows:  followsvc.NewMockService(),
		contacts: contactsvc.NewMockService(),
	}
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("CreatorsTest", "test"))
	api.UseMiddleware(auth.NewMiddleware(api, verifier))
	Register(api, env.dir, env.follows, env.contacts, "")
	env.router = router
	return env
}

func seedCards(env *testEnv) {
	env.dir.Cards = []*directory.Card{
		{UserID: "c1", FullName: "Meera Sharma", Bio: "Henna artist", City: "Jaipur", Categories: []string{"Mehendi Art"}},
		{UserID: "c2", FullName: "Arjun Patel", Bio: "Potter", City: "Pune", Categories: []string{"Pottery"}, IsFollowing: true},
	}
}

func TestListCreatorsAnonymous(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})
	seedCards(env)

	req := httptest.NewRequest(http.MethodGet, "/creators", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Total != 2 || len(data.Creators) != 2 {
		t.Errorf("expected 2 creators, got total=%d len=%d", data.Total, len(data.Creators))
	}
}

func TestListCreatorsInvalidTokenStillRejected(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{Error: auth.ErrInvalidToken})
	seedCards(env)

	req := httptest.NewRequest(http.MethodGet, "/creators", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestListCreatorsFilters(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})
	seedCards(env)

	req := httptest.NewRequest(http.MethodGet, "/creators?q=jaipur&category=Mehendi+Art", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(data.Creators) != 1 || data.Creators[0].UserID != "c1" {
		t.Errorf("expected only c1, got %+v", data.Creators)
	}
}

func TestListCreatorsCursorTypeMismatch(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})
	seedCards(env)

	cursor := pagination.Cursor{Type: "post", Value: "p1"}.Encode()
	req := httptest.NewRequest(http.MethodGet, "/creators?cursor="+cursor, nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestListCreatorsPagination(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})
	seedCards(env)

	req := httptest.NewRequest(http.MethodGet, "/creators?limit=1", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(data.Creators) != 1 || data.Total != 2 {
		t.Errorf("expected page of 1 out of 2, got len=%d total=%d", len(data.Creators), data.Total)
	}
	if link := resp.Header().Get("Link"); !strings.Contains(link, `rel="next"`) {
		t.Errorf("expected next link, got %q", link)
	}
}

func TestGetCreatorNotFound(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/creators/ghost", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetCreatorPage(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})
	env.dir.PageByID["c1"] = &directory.Page{
		UserID:   "c1",
		FullName: "Meera Sharma",
	}

	req := httptest.NewRequest(http.MethodGet, "/creators/c1", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var page Page
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if page.UserID != "c1" || page.FullName != "Meera Sharma" {
		t.Errorf("unexpected page %+v", page)
	}
}

func TestFollowRequiresAuth(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodPut, "/creators/c1/follow", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestFollowIsIdempotentAtTheEdge(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	for range 2 {
		req := httptest.NewRequest(http.MethodPut, "/creators/c1/follow", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
	}
	if env.follows.Count() != 1 {
		t.Errorf("expected a single relationship, got %d", env.follows.Count())
	}
}

func TestSelfFollowRejected(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodPut, "/creators/test-user-123/follow", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUnfollow(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodDelete, "/creators/c1/follow", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data FollowData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Following {
		t.Error("expected following=false after unfollow")
	}
}

func TestListFollowedCreators(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	seedCards(env)

	req := httptest.NewRequest(http.MethodGet, "/follows", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data FollowedData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Total != 1 || data.Creators[0].UserID != "c2" {
		t.Errorf("expected only followed c2, got %+v", data)
	}
}

func TestContactCreator(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	body := `{"message":"Do you take bridal bookings?"}`
	req := httptest.NewRequest(http.MethodPost, "/creators/c1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var data ContactData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Status != "pending" {
		t.Errorf("expected pending, got %s", data.Status)
	}
}

func TestContactSelfRejected(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	body := `{"message":"hello me"}`
	req := httptest.NewRequest(http.MethodPost, "/creators/test-user-123/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestListCreatorsServiceError(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{})
	env.dir.Err = errors.New("backend down")

	req := httptest.NewRequest(http.MethodGet, "/creators", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
