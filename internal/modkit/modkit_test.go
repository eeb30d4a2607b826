package modkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github-activity/internal/modkit/httpkit"
	phttp "github-activity/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(name string, seen *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*seen = append(*seen, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	assert.Empty(t, b.Name)
	assert.Empty(t, b.Prefix)
	assert.Empty(t, b.Mw)
	assert.Nil(t, b.Register)
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("activity"), WithPrefix("/activity"), WithName("renamed"))
	assert.Equal(t, "renamed", b.Name)
	assert.Equal(t, "/activity", b.Prefix)
}

func TestBuild_CopiesMiddleware(t *testing.T) {
	var seen []string
	mw := []func(http.Handler) http.Handler{tag("a", &seen)}
	b := Build(WithMiddlewares(mw...))
	mw[0] = tag("b", &seen)

	b.Mw[0](http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a"}, seen)
}

func TestMount_ScopesAndOrders(t *testing.T) {
	var seen []string
	b := Build(
		WithPrefix("/meta"),
		WithMiddlewares(tag("first", &seen), tag("second", &seen)),
		WithRegister(func(r httpkit.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "extra") })
		}),
	)

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), b, func(r httpkit.Router) {
		r.Get("/own", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "own") })
	})

	for path, want := range map[string]string{"/meta/own": "own", "/meta/extra": "extra"} {
		seen = nil
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, want, rec.Body.String())
		assert.Equal(t, []string{"first", "second"}, seen)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/own", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
