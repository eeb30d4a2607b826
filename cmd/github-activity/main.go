// Command github-activity prints a GitHub user's recent public activity
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github-activity/internal/adapters/ingest/github"
	"github-activity/internal/platform/config"
	"github-activity/internal/platform/logger"
	"github-activity/internal/platform/tracing"
	"github-activity/internal/services/activity/domain"
	"github-activity/internal/services/activity/service"

	"github.com/google/uuid"
)

const usage = "Usage: github-activity <username>"

func main() {
	// stdout carries the activity lines, so logs go to stderr and stay quiet unless LOG_LEVEL says otherwise
	logger.Init(logger.FromEnvWith(logger.Options{
		Level:   "warn",
		Format:  "console",
		Service: "github-activity",
		Writer:  os.Stderr,
	}))

	// opt-in via GITHUB_ACTIVITY_OTEL_ENDPOINT; off by default
	shutdown, err := tracing.Setup(context.Background(), config.New().Prefix("GITHUB_ACTIVITY_OTEL_"), "github-activity")
	if err != nil {
		logger.Get().Warn().Err(err).Msg("tracing disabled")
	}

	code := run(os.Args[1:], os.Stdout, func() domain.FetcherPort {
		return service.New(github.NewClient(github.Options{}))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := shutdown(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("trace flush failed")
	}
	cancel()
	os.Exit(code)
}

// run returns the process exit code. The fetcher is built only once the arguments are valid
func run(args []string, stdout io.Writer, newFetcher func() domain.FetcherPort) int {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stdout, usage)
		return 1
	}

	ctx := logger.WithRequest(context.Background(), uuid.NewString(), "")
	out := newFetcher().FetchActivity(ctx, args[0])

	if _, err := io.WriteString(stdout, out.String()); err != nil {
		logger.C(ctx).Error().Err(err).Msg("write activity failed")
	}
	return 0
}
