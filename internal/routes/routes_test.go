package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdg-registration/internal/controllers"
	"gdg-registration/internal/middleware"
	"gdg-registration/internal/models"
	"gdg-registration/internal/repository"
	"gdg-registration/internal/repository/memrepo"
	"gdg-registration/internal/services"
	"gdg-registration/internal/validation"
)

const ashaJSON = `{"name":"Asha Rao","gender":"Female","email":"asha@x.com","phone":"9876543210",
"enrollment":"CS2024001","college":"ABC Institute","year":"2nd Year","branch":"CSE",
"experience":"Beginner","interests":["AI"]}`

func newTestApp(t *testing.T, stores repository.Stores) *fiber.App {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	public := t.TempDir()
	for name, body := range map[string]string{
		"index.html":      "<h1>landing</h1>",
		"admin.html":      "<h1>admin</h1>",
		"registered.html": "<h1>registered</h1>",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(public, name), []byte(body), 0o644))
	}

	auth, err := middleware.NewMarkerAuthenticator("x-admin-auth", "true", "gdg-admin")
	require.NoError(t, err)

	status := services.NewStatusService(stores.Status, log)
	h := &controllers.Handler{
		Registrations: services.NewRegistrationService(stores, status, validation.New(), services.WithLogger(log)),
		Events:        services.NewEventService(stores.Events, log),
		Status:        status,
		Auth:          auth,
		Log:           log,
	}
	return NewApp(h, Options{PublicDir: public, Log: log})
}

func do(t *testing.T, app *fiber.App, method, path, body string, admin bool) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if admin {
		req.Header.Set("x-admin-auth", "true")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(body), &out), body)
	return out
}

func TestRegisterExampleFlow(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)
	ok := decode[map[string]any](t, body)
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "Registration successful!", ok["message"])

	second := strings.Replace(ashaJSON, "asha@x.com", "other@x.com", 1)
	resp, body = do(t, app, fiber.MethodPost, "/register", second, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Enrollment number already registered", decode[map[string]string](t, body)["error"])

	third := strings.Replace(ashaJSON, "CS2024001", "CS2024002", 1)
	resp, body = do(t, app, fiber.MethodPost, "/register", third, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered", decode[map[string]string](t, body)["error"])

	resp, body = do(t, app, fiber.MethodGet, "/api/registrations", "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]models.Registration](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "asha@x.com", list[0].Email)
	assert.Equal(t, services.DefaultEventName, list[0].EventName)
}

func TestRegisterValidationError(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	bad := strings.Replace(ashaJSON, `"college":"ABC Institute"`, `"college":"Other","otherCollege":"XY"`, 1)
	resp, body := do(t, app, fiber.MethodPost, "/register", bad, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please specify your college name", decode[map[string]string](t, body)["error"])

	resp, body = do(t, app, fiber.MethodPost, "/register", `{"name":`, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", decode[map[string]string](t, body)["error"])
}

func TestRegisterFormBodyWithRepeatedInterests(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	form := url.Values{
		"name":       {"Asha Rao"},
		"gender":     {"Female"},
		"email":      {"asha@x.com"},
		"phone":      {"98765 43210"},
		"enrollment": {"cs2024001"},
		"college":    {"ABC Institute"},
		"year":       {"2nd Year"},
		"branch":     {"CSE"},
		"experience": {"Beginner"},
		"interests":  {"AI", "Web"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, body := do(t, app, fiber.MethodGet, "/api/registrations", "", true)
	list := decode[[]models.Registration](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "CS2024001", list[0].Enrollment)
	assert.Equal(t, "9876543210", list[0].Phone)
	assert.Equal(t, []string{"AI", "Web"}, list[0].Interests)
}

func TestRegisterAcceptsSingleInterestString(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	single := strings.Replace(ashaJSON, `"interests":["AI"]`, `"interests":"AI"`, 1)
	resp, body := do(t, app, fiber.MethodPost, "/register", single, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)
}

func TestRegisterAcceptsNumericPhone(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	numeric := strings.Replace(ashaJSON, `"phone":"9876543210"`, `"phone":9876543210`, 1)
	resp, body := do(t, app, fiber.MethodPost, "/register", numeric, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)

	_, body = do(t, app, fiber.MethodGet, "/api/registrations", "", true)
	list := decode[[]models.Registration](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "9876543210", list[0].Phone)
}

func TestRegisterClosed(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodPost, "/api/toggle-registration", "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	toggled := decode[map[string]any](t, body)
	assert.Equal(t, false, toggled["isOpen"])
	assert.Equal(t, "Registration closed", toggled["message"])

	_, body = do(t, app, fiber.MethodGet, "/api/registration-status", "", false)
	assert.Equal(t, false, decode[map[string]bool](t, body)["isOpen"])

	resp, body = do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Registration is currently closed", decode[map[string]string](t, body)["error"])
}

func TestAdminRoutesRequireMarker(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	routes := []struct{ method, path string }{
		{fiber.MethodGet, "/api/registrations"},
		{fiber.MethodGet, "/api/export"},
		{fiber.MethodDelete, "/api/clear-data"},
		{fiber.MethodDelete, "/api/delete-user/abc"},
		{fiber.MethodPost, "/api/toggle-registration"},
		{fiber.MethodPost, "/api/save-event"},
		{fiber.MethodDelete, "/api/delete-event"},
	}
	for _, r := range routes {
		resp, _ := do(t, app, r.method, r.path, "", false)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", r.method, r.path)
	}

	for _, path := range []string{"/api/ping", "/api/registration-status", "/api/current-event"} {
		resp, _ := do(t, app, fiber.MethodGet, path, "", false)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestExportCSV(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodGet, "/api/export", "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), controllers.DefaultExportFilename)
	assert.Equal(t, strings.Join(services.ExportColumns, ",")+"\n", body)

	_, _ = do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	_, body = do(t, app, fiber.MethodGet, "/api/export", "", true)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Asha Rao,Female,asha@x.com,9876543210,CS2024001,"))
}

func TestDeleteAndClear(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodDelete, "/api/delete-user/65f000000000000000000001", "", true)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Registration not found", decode[map[string]string](t, body)["error"])

	_, _ = do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	_, body = do(t, app, fiber.MethodGet, "/api/registrations", "", true)
	list := decode[[]models.Registration](t, body)
	require.Len(t, list, 1)

	resp, body = do(t, app, fiber.MethodDelete, "/api/delete-user/"+list[0].ID, "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode[map[string]any](t, body)["success"])

	_, _ = do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	resp, body = do(t, app, fiber.MethodDelete, "/api/clear-data", "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cleared := decode[map[string]any](t, body)
	assert.Equal(t, true, cleared["success"])
	assert.EqualValues(t, 1, cleared["deletedCount"])
}

func TestEventEndpoints(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodGet, "/api/current-event", "", false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", body)

	resp, body = do(t, app, fiber.MethodPost, "/api/save-event", `{"title":"DevFest"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required", decode[map[string]string](t, body)["error"])

	resp, body = do(t, app, fiber.MethodPost, "/api/save-event",
		`{"title":"DevFest","description":"Talks","date":"Dec 7","location":"Hall A"}`, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)

	_, body = do(t, app, fiber.MethodGet, "/api/current-event", "", false)
	ev := decode[models.Event](t, body)
	assert.Equal(t, "DevFest", ev.Title)
	assert.Equal(t, "Hall A", ev.Location)

	_, _ = do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	_, body = do(t, app, fiber.MethodGet, "/api/registrations", "", true)
	assert.Equal(t, "DevFest", decode[[]models.Registration](t, body)[0].EventName)

	resp, _ = do(t, app, fiber.MethodDelete, "/api/delete-event", "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, fiber.MethodDelete, "/api/delete-event", "", true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, body = do(t, app, fiber.MethodGet, "/api/current-event", "", false)
	assert.Equal(t, "null", body)
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodPost, "/api/admin/login", `{"password":"wrong"}`, false)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid password", decode[map[string]string](t, body)["error"])

	resp, body = do(t, app, fiber.MethodPost, "/api/admin/login", `{"password":"gdg-admin"}`, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	login := decode[map[string]any](t, body)
	assert.Equal(t, "x-admin-auth", login["header"])
	assert.Equal(t, "true", login["value"])
}

func TestAPINotFoundAndPageFallback(t *testing.T) {
	app := newTestApp(t, memrepo.New().Stores())

	resp, body := do(t, app, fiber.MethodGet, "/api/nope", "", false)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "API endpoint not found", decode[map[string]string](t, body)["error"])

	resp, body = do(t, app, fiber.MethodGet, "/api/ping", "", false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]any](t, body)["status"])
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	_, body = do(t, app, fiber.MethodGet, "/admin", "", false)
	assert.Contains(t, body, "admin")
	_, body = do(t, app, fiber.MethodGet, "/registered", "", false)
	assert.Contains(t, body, "registered")
	resp, body = do(t, app, fiber.MethodGet, "/some/deep/link", "", false)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "landing")
}

func TestStoreUnavailable(t *testing.T) {
	app := newTestApp(t, repository.Unavailable())

	resp, body := do(t, app, fiber.MethodPost, "/register", ashaJSON, false)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Database not available", decode[map[string]string](t, body)["error"])

	resp, _ = do(t, app, fiber.MethodGet, "/api/ping", "", false)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
