package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type testEnv struct {
	router    *chi.Mux
	admins    *memAdmins
	projects  *memProjects
	inquiries *memInquiries
	profile   *memProfile
	notifier  *recordingNotifier
	tokens    *services.TokenService
}

func newTestEnv(t *testing.T, cfg map[string]string) *testEnv {
	t.Helper()

	c := map[string]string{"STATIC_DIR": t.TempDir()}
	for k, v := range cfg {
		c[k] = v
	}

	env := &testEnv{
		admins:    newMemAdmins(),
		projects:  newMemProjects(),
		inquiries: newMemInquiries(),
		profile:   &memProfile{},
		notifier:  &recordingNotifier{},
		tokens:    services.NewTokenService("test-secret"),
	}

	env.router = newRouter(Dependencies{
		Projects:  env.projects,
		Inquiries: env.inquiries,
		Profile:   env.profile,
		Auth:      services.NewAuthService(env.admins, env.tokens, bcrypt.MinCost),
		Notifier:  env.notifier,
	}, withConfig(c))
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login sets up an admin and returns a token for it.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/setup", credentialsRequest{Username: "admin", Password: "adminpassword"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/api/auth/login", credentialsRequest{Username: "admin", Password: "adminpassword"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestAuthFlow(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/auth/setup", credentialsRequest{Username: "admin", Password: "adminpassword"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Admin created successfully", rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/auth/setup", credentialsRequest{Username: "admin", Password: "other"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Admin already exists", rec.Body.String())

	stored, err := env.admins.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "adminpassword", stored.PasswordHash)

	rec = env.do(t, http.MethodPost, "/api/auth/login", credentialsRequest{Username: "admin", Password: "wrong"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	wrongPass := decode[loginResponse](t, rec)
	assert.False(t, wrongPass.Success)
	assert.Equal(t, "Invalid credentials", wrongPass.Message)

	rec = env.do(t, http.MethodPost, "/api/auth/login", credentialsRequest{Username: "nobody", Password: "adminpassword"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, wrongPass, decode[loginResponse](t, rec))

	rec = env.do(t, http.MethodPost, "/api/auth/login", credentialsRequest{Username: "admin", Password: "adminpassword"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	ok := decode[loginResponse](t, rec)
	assert.True(t, ok.Success)

	adminID, err := env.tokens.Parse(ok.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), adminID)
}

func TestAuthFlow_SetupDisabled(t *testing.T) {
	env := newTestEnv(t, map[string]string{"ALLOW_ADMIN_SETUP": "false"})

	rec := env.do(t, http.MethodPost, "/api/auth/setup", credentialsRequest{Username: "admin", Password: "pw"}, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, err := env.admins.FindByUsername(context.Background(), "admin")
	assert.Error(t, err)
}

func TestAuthGate(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	foreign, err := services.NewTokenService("another-secret").Issue(uuid.NewString())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	body := map[string]any{"title": "T", "description": "D"}

	tests := []struct {
		name       string
		omitHeader bool
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", omitHeader: true, wantStatus: http.StatusUnauthorized, wantBody: "Access Denied"},
		{name: "blank header", header: "", wantStatus: http.StatusBadRequest, wantBody: "Invalid Token"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusBadRequest, wantBody: "Invalid Token"},
		{name: "garbage", header: "Bearer garbage", wantStatus: http.StatusBadRequest, wantBody: "Invalid Token"},
		{name: "tampered", header: "Bearer " + tampered, wantStatus: http.StatusBadRequest, wantBody: "Invalid Token"},
		{name: "foreign secret", header: "Bearer " + foreign, wantStatus: http.StatusBadRequest, wantBody: "Invalid Token"},
		{name: "valid with prefix", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "valid without prefix", header: token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, _ := json.Marshal(body)
			req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(raw))
			if !tt.omitHeader {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestProjects_CreateAndList(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/projects", map[string]any{"title": "T", "description": "D"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	created := decode[models.Project](t, rec)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.ProjectTypeWeb, created.Type)
	assert.Empty(t, created.Tags)
	assert.NotNil(t, created.Tags)
	assert.False(t, created.IsFeatured)
	assert.Equal(t, 0, created.DisplayOrder)

	rec = env.do(t, http.MethodGet, "/api/projects", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.Project](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = env.do(t, http.MethodGet, "/api/projects/"+created.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "T", decode[models.Project](t, rec).Title)
}

func TestProjects_EmptyListIsArray(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/projects", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestProjects_Ordering(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	for _, p := range []map[string]any{
		{"title": "A", "description": "d", "display_order": 2},
		{"title": "B", "description": "d", "display_order": 1},
		{"title": "C", "description": "d", "display_order": 1},
	} {
		rec := env.do(t, http.MethodPost, "/api/projects", p, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := env.do(t, http.MethodGet, "/api/projects", nil, "")
	list := decode[[]models.Project](t, rec)
	require.Len(t, list, 3)

	titles := []string{list[0].Title, list[1].Title, list[2].Title}
	assert.Equal(t, []string{"B", "C", "A"}, titles)
}

func TestProjects_Validation(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	tests := []struct {
		name      string
		body      any
		wantField string
	}{
		{name: "missing description", body: map[string]any{"title": "T"}, wantField: "description"},
		{name: "missing title", body: map[string]any{"description": "D"}, wantField: "title"},
		{name: "invalid type", body: map[string]any{"title": "T", "description": "D", "type": "mobile"}, wantField: "type"},
		{name: "malformed json", body: `{"title":`, wantField: "payload"},
		{name: "wrong field type", body: `{"title":"T","description":"D","display_order":"first"}`, wantField: "payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/projects", tt.body, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantField, decode[ErrorResponse](t, rec).Field)
		})
	}

	rec := env.do(t, http.MethodGet, "/api/projects", nil, "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestProjects_Update(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title":       "T",
		"description": "D",
		"type":        "ml",
		"tags":        []string{"go", "pg"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[models.Project](t, rec)

	rec = env.do(t, http.MethodPut, "/api/projects/"+created.ID.String(), map[string]any{"title": "New", "is_featured": true}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Project](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "D", updated.Description)
	assert.Equal(t, models.ProjectTypeML, updated.Type)
	assert.Equal(t, []string{"go", "pg"}, []string(updated.Tags))
	assert.True(t, updated.IsFeatured)

	rec = env.do(t, http.MethodPut, "/api/projects/"+created.ID.String(), map[string]any{"type": "desktop"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/projects/"+uuid.NewString(), map[string]any{"title": "x"}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/projects/not-a-uuid", map[string]any{"title": "x"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id", decode[ErrorResponse](t, rec).Field)

	stored, err := env.projects.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTypeML, stored.Type)
}

func TestProjects_ConcurrentUpdatesKeepEveryField(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/projects", map[string]any{"title": "T", "description": "D"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[models.Project](t, rec)
	path := "/api/projects/" + created.ID.String()

	patches := []map[string]any{
		{"title": "Renamed"},
		{"description": "Rewritten"},
		{"is_featured": true},
		{"display_order": 7},
	}

	var wg sync.WaitGroup
	for _, patch := range patches {
		wg.Add(1)
		go func(patch map[string]any) {
			defer wg.Done()
			rec := env.do(t, http.MethodPut, path, patch, token)
			assert.Equal(t, http.StatusOK, rec.Code)
		}(patch)
	}
	wg.Wait()

	stored, err := env.projects.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "Rewritten", stored.Description)
	assert.True(t, stored.IsFeatured)
	assert.Equal(t, 7, stored.DisplayOrder)
}

func TestProjects_DeleteIsIdempotent(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/projects", map[string]any{"title": "T", "description": "D"}, token)
	created := decode[models.Project](t, rec)

	for i := 0; i < 2; i++ {
		rec = env.do(t, http.MethodDelete, "/api/projects/"+created.ID.String(), nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Project deleted"}`, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/projects/"+created.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjects_StoreFailure(t *testing.T) {
	router := newRouter(Dependencies{
		Projects:  failingStore{},
		Inquiries: newMemInquiries(),
		Profile:   &memProfile{},
		Auth:      services.NewAuthService(newMemAdmins(), services.NewTokenService("s"), bcrypt.MinCost),
		Notifier:  &recordingNotifier{},
	}, withConfig(map[string]string{"STATIC_DIR": t.TempDir()}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "Internal Server Error", resp.Error)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestInquiries_Lifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/inquiries", map[string]any{
		"name":        "Ada",
		"email":       "ada@example.com",
		"message":     "Hi",
		"projectType": "ml",
		"status":      "contacted",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	notified := env.notifier.notified()
	require.Len(t, notified, 1)
	assert.Equal(t, "Ada", notified[0].Name)

	rec = env.do(t, http.MethodGet, "/api/inquiries", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/inquiries", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.Inquiry](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, models.InquiryStatusNew, list[0].Status)
	assert.Equal(t, models.InquiryTypeML, list[0].ProjectType)

	id := list[0].ID.String()

	rec = env.do(t, http.MethodPatch, "/api/inquiries/"+id, map[string]any{"status": "contacted"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Inquiry](t, rec)
	assert.Equal(t, models.InquiryStatusContacted, updated.Status)
	assert.Equal(t, "Hi", updated.Message)

	rec = env.do(t, http.MethodPatch, "/api/inquiries/"+id, map[string]any{"status": "new"}, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/inquiries/"+id, map[string]any{"status": "archived"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", decode[ErrorResponse](t, rec).Field)

	rec = env.do(t, http.MethodPatch, "/api/inquiries/"+uuid.NewString(), map[string]any{"status": "read"}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for i := 0; i < 2; i++ {
		rec = env.do(t, http.MethodDelete, "/api/inquiries/"+id, nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Inquiry deleted"}`, rec.Body.String())
	}
	assert.Equal(t, 0, env.inquiries.count())
}

func TestInquiries_NewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	for _, name := range []string{"first", "second", "third"} {
		rec := env.do(t, http.MethodPost, "/api/inquiries", map[string]any{"name": name, "email": "e@x.io", "message": "m"}, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	list := decode[[]models.Inquiry](t, env.do(t, http.MethodGet, "/api/inquiries", nil, token))
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "first", list[2].Name)
	assert.Equal(t, models.InquiryTypeWebsite, list[0].ProjectType)
}

func TestInquiries_ValidationSkipsNotification(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/inquiries", map[string]any{"name": "Ada", "email": "ada@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "message", decode[ErrorResponse](t, rec).Field)

	rec = env.do(t, http.MethodPost, "/api/inquiries", map[string]any{"name": "Ada", "email": "a@b.c", "message": "m", "projectType": "game"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, env.notifier.notified())
	assert.Equal(t, 0, env.inquiries.count())
}

type failingMailer struct{}

func (failingMailer) Send(context.Context, services.Message) error {
	return errors.New("535 authentication failed")
}

func TestInquiries_MailFailureDoesNotFailRequest(t *testing.T) {
	notifier := services.NewInquiryNotifier(failingMailer{}, "owner@example.com", time.Second)
	inquiries := newMemInquiries()

	router := newRouter(Dependencies{
		Projects:  newMemProjects(),
		Inquiries: inquiries,
		Profile:   &memProfile{},
		Auth:      services.NewAuthService(newMemAdmins(), services.NewTokenService("s"), bcrypt.MinCost),
		Notifier:  notifier,
	}, withConfig(map[string]string{"STATIC_DIR": t.TempDir()}))

	raw := `{"name":"Ada","email":"ada@example.com","message":"Hi"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(raw)))
	notifier.Wait()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, 1, inquiries.count())
}

func TestProfile_DefaultThenUpsert(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(t, http.MethodGet, "/api/profile", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	def := decode[map[string]any](t, rec)
	assert.Equal(t, models.DefaultProfile().FullName, def["full_name"])
	assert.NotContains(t, def, "_id")

	rec = env.do(t, http.MethodPut, "/api/profile", map[string]any{"full_name": "X"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/profile", map[string]any{"full_name": "X", "bio": "B"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[models.Profile](t, rec)

	rec = env.do(t, http.MethodPut, "/api/profile", map[string]any{"location": "Lisbon"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[models.Profile](t, rec)

	assert.Equal(t, models.ProfileID, first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "X", second.FullName)
	assert.Equal(t, "B", second.Bio)
	assert.Equal(t, "Lisbon", second.Location)

	rec = env.do(t, http.MethodGet, "/api/profile", nil, "")
	got := decode[models.Profile](t, rec)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Lisbon", got.Location)
	assert.Equal(t, 2, env.profile.writes)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[healthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.Uptime, 0.0)
	assert.Empty(t, resp.Database)
}

func TestHealth_DatabaseDown(t *testing.T) {
	handler := newHealthHandler(stubPinger{err: errors.New("dial tcp: connection refused")}, time.Now().Add(-time.Minute))

	rec := httptest.NewRecorder()
	handler.health()(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[healthResponse](t, rec)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unavailable", resp.Database)
	assert.GreaterOrEqual(t, resp.Uptime, 60.0)
}

func TestStaticSPA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	env := newTestEnv(t, map[string]string{"STATIC_DIR": dir})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/", wantStatus: http.StatusOK, wantBody: "<html>app</html>"},
		{path: "/admin/dashboard", wantStatus: http.StatusOK, wantBody: "<html>app</html>"},
		{path: "/assets/app.js", wantStatus: http.StatusOK, wantBody: "console.log(1)"},
		{path: "/assets", wantStatus: http.StatusOK, wantBody: "<html>app</html>"},
		{path: "/../../etc/passwd", wantStatus: http.StatusOK, wantBody: "<html>app</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}

	rec := env.do(t, http.MethodGet, "/api/nothing-here", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decode[ErrorResponse](t, rec).Status)
}

func TestStaticSPA_NoBundle(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/anything", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)

	env.do(t, http.MethodGet, "/api/projects", nil, "")

	rec := env.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_request_duration_seconds_count{method="GET",route="/api/projects",status="200"}`)
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(map[string]string{}, Dependencies{})
	assert.Error(t, err)

	srv, err := NewServer(map[string]string{"PORT": "6001"}, Dependencies{
		Projects:  newMemProjects(),
		Inquiries: newMemInquiries(),
		Profile:   &memProfile{},
		Auth:      services.NewAuthService(newMemAdmins(), services.NewTokenService("s"), bcrypt.MinCost),
		Notifier:  &recordingNotifier{},
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:6001", srv.Addr)
}

func TestContextAdminID(t *testing.T) {
	_, err := ctxGetAdminID(context.Background())
	assert.Error(t, err)

	id, err := ctxGetAdminID(ctxWithAdminID(context.Background(), "abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
