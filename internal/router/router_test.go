package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/handler"
	"github.com/mishasvintus/mergington_activities/internal/metrics"
	"github.com/mishasvintus/mergington_activities/internal/repository"
	"github.com/mishasvintus/mergington_activities/internal/service"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Mergington High School</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "styles.css"), []byte("body { margin: 0; }"), 0o644))

	repo, err := repository.NewActivityRepository(repository.DefaultActivities())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	activityService := service.NewActivityService(repo, metrics.New(reg), zap.NewNop(), false)

	return SetupRoutes(handler.NewActivityHandler(activityService), Options{
		StaticDir: staticDir,
		Logger:    zap.NewNop(),
		Gatherer:  reg,
	})
}

func do(t *testing.T, r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupURL(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?" + url.Values{"email": {email}}.Encode()
}

func listActivities(t *testing.T, r *gin.Engine) map[string]handler.ActivityResponse {
	t.Helper()
	w := do(t, r, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]handler.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestRoot_RedirectsToStaticIndex(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/")

	assert.Contains(t, []int{http.StatusFound, http.StatusTemporaryRedirect}, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}

func TestStatic_ServesFrontEnd(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/static/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mergington High School")

	w = do(t, r, http.MethodGet, "/static/styles.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "margin")
}

func TestGetActivities_ReturnsData(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

	require.Contains(t, raw, "Chess Club")
	chess := raw["Chess Club"]
	assert.Contains(t, chess, "description")
	assert.Contains(t, chess, "schedule")
	assert.Contains(t, chess, "max_participants")
	assert.IsType(t, []any{}, chess["participants"])
}

func TestSignupAndUnregisterFlow(t *testing.T) {
	r := newTestEngine(t)
	const activity = "Science Club"
	const email = "testuser@mergington.edu"

	w := do(t, r, http.MethodPost, signupURL(activity, email))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Signed up testuser@mergington.edu for Science Club", message(t, w))

	assert.Contains(t, listActivities(t, r)[activity].Participants, email)

	w = do(t, r, http.MethodPost, signupURL(activity, email))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, signupURL(activity, email))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unregistered testuser@mergington.edu from Science Club", message(t, w))

	assert.NotContains(t, listActivities(t, r)[activity].Participants, email)

	w = do(t, r, http.MethodDelete, signupURL(activity, email))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignup_NonexistentActivityReturns404(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, signupURL("Nonexistent Activity", "x@x.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, signupURL("Nonexistent Activity", "x@x.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignup_AcceptsAnyEmailString(t *testing.T) {
	r := newTestEngine(t)

	tests := []struct {
		name           string
		method         string
		activity       string
		email          string
		expectedStatus int
	}{
		{name: "signup - unknown activity", method: http.MethodPost, activity: "Nonexistent Activity", email: "bob", expectedStatus: http.StatusNotFound},
		{name: "unregister - unknown activity", method: http.MethodDelete, activity: "Nonexistent Activity", email: "bob", expectedStatus: http.StatusNotFound},
		{name: "unregister - not enrolled", method: http.MethodDelete, activity: "Science Club", email: "bob", expectedStatus: http.StatusNotFound},
		{name: "signup - plain string", method: http.MethodPost, activity: "Science Club", email: "student42", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, signupURL(tt.activity, tt.email))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	assert.Contains(t, listActivities(t, r)["Science Club"].Participants, "student42")
}

func TestSignup_MissingEmailReturns400(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/activities/Chess%20Club/signup")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthzAndMetrics(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, signupURL("Chess Club", "new@mergington.edu"))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `activities_signups_total{activity="Chess Club"} 1`), body)
	assert.Contains(t, body, `activities_participants{activity="Chess Club"} 3`)
}

func TestSetupRoutes_WithoutOptionalEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, err := repository.NewActivityRepository(nil)
	require.NoError(t, err)
	s := service.NewActivityService(repo, metrics.New(nil), zap.NewNop(), false)

	r := SetupRoutes(handler.NewActivityHandler(s), Options{Logger: zap.NewNop()})

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/metrics").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/static/index.html").Code)
	assert.JSONEq(t, `{}`, do(t, r, http.MethodGet, "/activities").Body.String())
}
