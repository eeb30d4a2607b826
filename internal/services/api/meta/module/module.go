// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"github-activity/internal/adapters/ingest/github"
	modkit "github-activity/internal/modkit"
	"github-activity/internal/modkit/httpkit"
	"github-activity/internal/modkit/module"
	str "github-activity/internal/platform/strings"

	metahttp "github-activity/internal/services/api/meta/http"
)

// Module serves health, version and service info
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) module.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		b: b,
		deps: metahttp.Deps{
			ServiceName: "github-activity-api",
			StartedAt:   time.Now(),
			Upstream:    deps.Cfg.Prefix("GITHUB_ACTIVITY_").MayURL("BASE_URL", github.DefaultBaseURL),
			Modules:     module.Names,
		},
	}
}

// MountRoutes mounts /health, /version and /service under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, m.b, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports is empty; nothing depends on meta
func (m *Module) Ports() any { return nil }
