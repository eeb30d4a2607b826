// Package modkit wires API modules: shared deps, build options and scoped mounting
package modkit

import (
	"net/http"

	"github-activity/internal/modkit/httpkit"
	"github-activity/internal/platform/config"
	"github-activity/internal/platform/logger"
	"github-activity/internal/platform/metrics"
)

// Deps holds what every module may read. The zero value is usable in tests
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Metrics is nil when metrics are disabled
	Metrics *metrics.Registry
}

// Built is the result of applying Options
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Register func(httpkit.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Register: c.register,
	}
}

// Mount scopes a module under prefix, applies mw, then registers its own routes and any extra ones
func Mount(r httpkit.Router, b Built, own func(httpkit.Router)) {
	r.Route(b.Prefix, func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		own(rr)
		if b.Register != nil {
			b.Register(rr)
		}
	})
}
