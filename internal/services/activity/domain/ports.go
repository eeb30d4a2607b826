package domain

import (
	"context"

	"github-activity/internal/adapters/ingest/github"
)

// EventSource reads the public event feed of a GitHub user
type EventSource interface {
	UserEvents(ctx context.Context, login string) ([]*github.Event, error)
}

// FetcherPort is consumed by the CLI, handlers and other modules
type FetcherPort interface {
	FetchActivity(ctx context.Context, username string) Outcome
}

// BatchPort fetches several users one after another
type BatchPort interface {
	FetchMany(ctx context.Context, usernames []string) []Outcome
}
