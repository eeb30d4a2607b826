package module

import (
	"time"

	"github-activity/internal/adapters/ingest/github"
	"github-activity/internal/platform/config"
	"github-activity/internal/services/activity/domain"
)

// Options controls the activity module. Values may also be read from env
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Source replaces the GitHub client, mostly for tests
	Source domain.EventSource
}

// FromConfig reads options using the GITHUB_ACTIVITY_ prefix
func FromConfig(cfg config.Conf) Options {
	gh := cfg.Prefix("GITHUB_ACTIVITY_")
	return Options{
		BaseURL:   gh.MayURL("BASE_URL", github.DefaultBaseURL),
		UserAgent: gh.MayString("USER_AGENT", ""),
		Timeout:   gh.MayDuration("TIMEOUT", 0),
	}
}

func (o Options) merge(over Options) Options {
	if over.BaseURL != "" {
		o.BaseURL = over.BaseURL
	}
	if over.UserAgent != "" {
		o.UserAgent = over.UserAgent
	}
	if over.Timeout != 0 {
		o.Timeout = over.Timeout
	}
	o.Source = over.Source
	return o
}
