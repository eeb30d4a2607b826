package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the plain handler func every route takes
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against; chi stays behind AdaptChi
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))

	// Mux is the handler for this router's scope
	Mux() http.Handler
}

// URLParam returns a path parameter captured by the router, e.g. {username}
func URLParam(r *http.Request, key string) string { return chi.URLParam(r, key) }
