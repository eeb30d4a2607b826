// Package module wires the activity service into the API using modkit
package module

import (
	"github-activity/internal/adapters/ingest/github"
	modkit "github-activity/internal/modkit"
	"github-activity/internal/modkit/httpkit"
	str "github-activity/internal/platform/strings"
	actihttp "github-activity/internal/services/activity/http"
	actisvc "github-activity/internal/services/activity/service"
)

// Module implements the activity module
type Module struct {
	deps  modkit.Deps
	b     modkit.Built
	ports Ports
	svc   actisvc.Service
}

// New constructs the activity module. Non-zero overrides win over env config
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("activity"), modkit.WithPrefix("/activity")}, opts...)...)

	o := FromConfig(deps.Cfg).merge(overrides)
	src := o.Source
	if src == nil {
		src = github.NewClient(github.Options{
			BaseURL:   o.BaseURL,
			UserAgent: o.UserAgent,
			Timeout:   o.Timeout,
		})
	}

	var svcOpts []actisvc.Option
	if deps.Metrics != nil {
		rec, err := actisvc.NewRecorder(deps.Metrics)
		if err != nil {
			deps.Log.Warn().Err(err).Msg("activity metrics disabled")
		} else {
			svcOpts = append(svcOpts, actisvc.WithRecorder(rec))
		}
	}
	svc := actisvc.New(src, svcOpts...)

	return &Module{
		deps:  deps,
		b:     b,
		svc:   svc,
		ports: Ports{Fetcher: svc, Batch: svc},
	}
}

// MountRoutes mounts /users/{username} and /batch under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, m.b, func(rr httpkit.Router) { actihttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports returns the module ports (Fetcher, Batch)
func (m *Module) Ports() any { return m.ports }
