package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kalakararena/api/internal/platform/auth"
	applog "github.com/kalakararena/api/internal/platform/logging"
	appmiddleware "github.com/kalakararena/api/internal/platform/middleware"
	"github.com/kalakararena/api/internal/platform/respond"
	"github.com/kalakararena/api/internal/platform/storage"
	creatorsvc "github.com/kalakararena/api/internal/service/creator"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

const avatarsBucket = "test-avatars"

type testEnv struct {
	profiles *profilesvc.MockService
	creators *creatorsvc.MockService
	store    *storage.MockStore
	router   chi.Router
}

func newTestEnv(verifier auth.Verifier) *testEnv {
	env := &testEnv{
		profiles: profilesvc.NewMockService(),
		creators: creatorsvc.NewMockService(),
		store:    storage.NewMockStore(),
	}
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("ProfileTest", "test"))
	api.UseMiddleware(auth.NewMiddleware(api, verifier))
	Register(api, env.profiles, env.creators, env.store, avatarsBucket)
	env.router = router
	return env
}

func (env *testEnv) seedCreatorAccount(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if _, err := env.profiles.Create(ctx, "test-creator-456", "Meera Sharma"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if _, err := env.creators.Create(ctx, "test-creator-456"); err != nil {
		t.Fatalf("seed creator: %v", err)
	}
}

func TestGetProfileWithCreatorDetails(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestCreator()})
	env.seedCreatorAccount(t)
	bio := "Henna artist"
	if _, err := env.creators.Update(context.Background(), "test-creator-456", creatorsvc.UpdateParams{Bio: &bio}); err != nil {
		t.Fatalf("seed bio: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var p Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &p); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if p.FullName != "Meera Sharma" {
		t.Errorf("expected name, got %q", p.FullName)
	}
	if p.Creator == nil || p.Creator.Bio != "Henna artist" {
		t.Errorf("expected creator details, got %+v", p.Creator)
	}
}

func TestGetProfileUserHasNoCreatorDetails(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	if _, err := env.profiles.Create(context.Background(), "test-user-123", "Arjun Patel"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var p Profile
	if err := json.Unmarshal(resp.Body.Bytes(), &p); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if p.Creator != nil {
		t.Errorf("regular account must not carry creator details")
	}
}

func TestUpdateProfileMergedSave(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestCreator()})
	env.seedCreatorAccount(t)

	body := `{"fullName":"Meera S.","bio":"Henna artist","city":"Jaipur","categories":["Mehendi Art"," Mehendi Art ",""]}`
	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data UpdateData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(data.Notices) != 0 {
		t.Errorf("expected clean save, got notices %v", data.Notices)
	}
	if data.Profile.FullName != "Meera S." {
		t.Errorf("expected updated name, got %q", data.Profile.FullName)
	}
	if data.Profile.Creator == nil || data.Profile.Creator.Bio != "Henna artist" {
		t.Errorf("expected updated details, got %+v", data.Profile.Creator)
	}
	if got := data.Profile.Creator.Categories; len(got) != 1 || got[0] != "Mehendi Art" {
		t.Errorf("expected normalized categories, got %v", got)
	}
}

func TestUpdateProfilePartialFailure(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestCreator()})
	env.seedCreatorAccount(t)
	env.creators.Err = errors.New("creators down")

	body := `{"fullName":"Meera S.","bio":"Henna artist"}`
	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("partial failure should still report success, got %d: %s", resp.Code, resp.Body.String())
	}
	var data UpdateData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(data.Notices) != 1 || !strings.Contains(data.Notices[0], "creator details") {
		t.Errorf("expected creator details notice, got %v", data.Notices)
	}
	if data.Profile.FullName != "Meera S." {
		t.Errorf("name leg must still apply, got %q", data.Profile.FullName)
	}
}

func TestUpdateProfileBothLegsFail(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestCreator()})
	env.seedCreatorAccount(t)
	env.profiles.Err = errors.New("profiles down")
	env.creators.Err = errors.New("creators down")

	body := `{"fullName":"Meera S.","bio":"Henna artist"}`
	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when nothing applied, got %d", resp.Code)
	}
}

func TestUpdateProfileCreatorFieldsNeedCreatorAccount(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	if _, err := env.profiles.Create(context.Background(), "test-user-123", "Arjun Patel"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	body := `{"bio":"I am not a creator"}`
	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUpdateProfileEmptyBody(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})

	req := httptest.NewRequest(http.MethodPatch, "/profile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func avatarRequest(t *testing.T, filename, contentType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="avatar"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create form part: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/profile/avatar", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func TestUploadAvatar(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	if _, err := env.profiles.Create(context.Background(), "test-user-123", "Arjun Patel"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, avatarRequest(t, "me.png", "image/png"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data AvatarData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !strings.HasSuffix(data.AvatarURL, "test-user-123/avatar.png") {
		t.Errorf("expected per-user avatar path, got %q", data.AvatarURL)
	}
	if !env.store.Has(avatarsBucket, "test-user-123/avatar.png") {
		t.Error("expected avatar object in bucket")
	}

	p, err := env.profiles.Get(context.Background(), "test-user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AvatarURL != data.AvatarURL {
		t.Errorf("profile should record the avatar URL")
	}
}

func TestUploadAvatarProfileWriteFailureKeepsOldURL(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	ctx := context.Background()
	if _, err := env.profiles.Create(ctx, "test-user-123", "Arjun Patel"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if _, err := env.profiles.SetAvatarURL(ctx, "test-user-123", "https://storage.example.test/old/avatar.png"); err != nil {
		t.Fatalf("seed avatar URL: %v", err)
	}
	env.profiles.Err = errors.New("firestore unavailable")

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, avatarRequest(t, "me.png", "image/png"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.Code, resp.Body.String())
	}
	if !env.store.Has(avatarsBucket, "test-user-123/avatar.png") {
		t.Error("expected the uploaded object to remain in the bucket")
	}

	env.profiles.Err = nil
	p, err := env.profiles.Get(ctx, "test-user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AvatarURL != "https://storage.example.test/old/avatar.png" {
		t.Errorf("expected previous avatar URL untouched, got %q", p.AvatarURL)
	}
}

func TestUploadAvatarOverwrites(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	if _, err := env.profiles.Create(context.Background(), "test-user-123", "Arjun Patel"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	for range 2 {
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, avatarRequest(t, "me.png", "image/png"))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
	}
	if env.store.Len() != 1 {
		t.Errorf("expected one avatar object after re-upload, got %d", env.store.Len())
	}
}

func TestUploadAvatarUnsupportedExtension(t *testing.T) {
	env := newTestEnv(&auth.MockVerifier{User: auth.TestUser()})
	if _, err := env.profiles.Create(context.Background(), "test-user-123", "Arjun Patel"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, avatarRequest(t, "notes.txt", "image/png"))

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.store.Len() != 0 {
		t.Errorf("rejected upload must not reach the bucket")
	}
}
