// Command github-activity-api serves GitHub user activity over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-activity/internal/platform/config"
	"github-activity/internal/platform/logger"
	"github-activity/internal/platform/metrics"
	phttp "github-activity/internal/platform/net/http"
	"github-activity/internal/platform/tracing"

	"github-activity/internal/services/api"
)

func main() { os.Exit(serve()) }

// serve returns the exit code once the server has drained
func serve() int {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	logger.Init(logger.FromEnvWith(logger.Options{
		Level:   "info",
		Format:  "console",
		Service: api.ServiceName,
	}))
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := tracing.Setup(ctx, root.Prefix("GITHUB_ACTIVITY_OTEL_"), api.ServiceName)
	if err != nil {
		l.Warn().Err(err).Msg("tracing disabled")
	}
	defer func() {
		flush, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(flush)
	}()

	var reg *metrics.Registry
	if apiCfg.MayBool("METRICS", true) {
		if reg, err = metrics.New(); err != nil {
			l.Warn().Err(err).Msg("metrics disabled")
			reg = nil
		}
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root, // modules read their own prefixes (GITHUB_ACTIVITY_*)
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
			Metrics:        reg,
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return 1
	}
	return 0
}
