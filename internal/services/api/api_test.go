package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github-activity/internal/modkit/module"
	"github-activity/internal/platform/config"
	"github-activity/internal/platform/metrics"
	phttp "github-activity/internal/platform/net/http"
	"github-activity/internal/services/api"

	actimod "github-activity/internal/services/activity/module"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, swagger bool) http.Handler {
	t.Helper()
	return newAPIWith(t, api.Options{EnableSwagger: swagger})
}

func newAPIWith(t *testing.T, opt api.Options) http.Handler {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/events" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[{"type":"PushEvent","repo":{"name":"octo/hi"},"payload":{"commits":[{}]}}]`))
	}))
	t.Cleanup(gh.Close)

	mux := chi.NewRouter()
	opt.Config = config.New()
	opt.CORSOrigins = []string{"*"}
	opt.Activity = actimod.Options{BaseURL: gh.URL}
	api.Mount(phttp.AdaptChi(mux), opt)
	return mux
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func TestMount_Activity(t *testing.T) {
	h := newAPI(t, false)

	rec, body := get(t, h, "/api/v1/activity/users/octocat")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"Pushed 1 commits to octo/hi"}, data["lines"])

	rec, body = get(t, h, "/api/v1/activity/users/ghost")
	require.Equal(t, http.StatusOK, rec.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, false, data["ok"])
	assert.Equal(t, []any{"HTTP Error: 404 - Not Found"}, data["lines"])
}

func TestMount_MetaListsModules(t *testing.T) {
	rec, body := get(t, newAPI(t, false), "/api/v1/meta/service")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"activity", "meta"}, data["modules"])
	assert.Equal(t, api.ServiceName, data["name"])
}

func TestMount_Heartbeat(t *testing.T) {
	rec, _ := get(t, newAPI(t, false), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMount_Swagger(t *testing.T) {
	rec, _ := get(t, newAPI(t, false), "/api/docs/doc.json")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body := get(t, newAPI(t, true), "/api/docs/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.3", body["openapi"])
}

func TestMount_ProfilerOffByDefault(t *testing.T) {
	rec, _ := get(t, newAPI(t, false), "/debug/pprof/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMount_Metrics(t *testing.T) {
	rec, _ := get(t, newAPI(t, false), "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	reg, err := metrics.New()
	require.NoError(t, err)
	h := newAPIWith(t, api.Options{Metrics: reg})

	get(t, h, "/api/v1/activity/users/octocat")
	rec, _ = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `github_activity_fetches_total{kind="none"} 1`)
	assert.Contains(t, body, `route="/api/v1/activity/users/{username}"`)
}
