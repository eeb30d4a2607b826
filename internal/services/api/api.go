// Package api composes the HTTP API from its modules
package api

import (
	"github-activity/internal/core/version"
	"github-activity/internal/platform/config"
	"github-activity/internal/platform/logger"
	"github-activity/internal/platform/metrics"
	phttp "github-activity/internal/platform/net/http"
	"github-activity/internal/platform/net/middleware"

	"github-activity/internal/modkit"
	"github-activity/internal/modkit/httpkit"
	"github-activity/internal/modkit/module"
	"github-activity/internal/modkit/swaggerkit"

	actimod "github-activity/internal/services/activity/module"
	metamod "github-activity/internal/services/api/meta/module"
)

// ServiceName identifies the API in logs and meta responses
const ServiceName = "github-activity-api"

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string

	// Metrics enables /metrics and per-request counters when set
	Metrics *metrics.Registry

	// Activity overrides the activity module options (tests inject a Source here)
	Activity actimod.Options
}

// Mount mounts the API onto r. It must run before anything else is registered on r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config, Log: *logger.Get(), Metrics: opt.Metrics}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// answers load balancer probes without touching the API stack
	r.Use(middleware.Heartbeat("/health"))

	mods := []module.Module{
		metamod.New(deps),
		actimod.New(deps, opt.Activity),
	}
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
	}

	swaggerkit.Register(swaggerkit.SetVersion(version.Info(ServiceName).Version))
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := append(httpkit.CommonStack(), middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: opt.CORSOrigins,
	}))
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
		if mw, err := middleware.Metrics(opt.Metrics); err != nil {
			deps.Log.Warn().Err(err).Msg("request metrics disabled")
		} else {
			stack = append(stack, mw)
		}
	}
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().Strs("modules", module.Names()).Msg("api mounted")
}
