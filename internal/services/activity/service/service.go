// Package service contains the activity fetch workflow
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github-activity/internal/adapters/ingest/github"
	"github-activity/internal/core/describe"
	perr "github-activity/internal/platform/errors"
	"github-activity/internal/platform/logger"
	"github-activity/internal/services/activity/domain"
)

// Service defines the activity service contract
type Service interface {
	domain.FetcherPort
	domain.BatchPort
}

// Recorder is told about every finished fetch
type Recorder interface {
	Fetched(kind domain.ErrorKind, elapsed time.Duration)
}

// Option configures Svc
type Option func(*Svc)

// WithRecorder reports fetch outcomes to r
func WithRecorder(r Recorder) Option {
	return func(s *Svc) { s.rec = r }
}

// Svc implements the activity service
type Svc struct {
	src domain.EventSource
	rec Recorder
}

// New constructs an activity service over an event source
func New(src domain.EventSource, opts ...Option) *Svc {
	if src == nil {
		panic("activity.Service requires a non nil EventSource")
	}
	s := &Svc{src: src}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FetchActivity reads one page of events for username and renders it
// Errors never escape: they are classified and rendered into the outcome
func (s *Svc) FetchActivity(ctx context.Context, username string) (out domain.Outcome) {
	log := logger.C(logger.WithRequest(ctx, "", username))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("activity fetch panicked")
			out = domain.Failed(username, Classify(fmt.Errorf("%v", r)))
		}
		if s.rec != nil {
			s.rec.Fetched(out.Kind(), time.Since(start))
		}
	}()

	events, err := s.src.UserEvents(ctx, username)
	if err == nil {
		var lines []string
		lines, err = describe.All(events)
		if err == nil {
			if len(lines) == 0 {
				lines = []string{domain.NoActivity}
			}
			log.Debug().Int("events", len(events)).Msg("activity fetched")
			return domain.Ok(username, lines)
		}
	}

	f := Classify(err)
	log.Warn().Err(err).Str("kind", f.Kind.String()).Bool("retryable", perr.Retryable(err)).Msg("activity fetch failed")
	return domain.Failed(username, f)
}

// FetchMany fetches each username in order, one request at a time
func (s *Svc) FetchMany(ctx context.Context, usernames []string) []domain.Outcome {
	out := make([]domain.Outcome, 0, len(usernames))
	for _, u := range usernames {
		out = append(out, s.FetchActivity(ctx, u))
	}
	return out
}

// Classify maps an adapter or mapping error to its rendered failure
func Classify(err error) domain.Failure {
	var (
		te *github.TransportError
		se *github.StatusError
		ue *github.UnexpectedStatusError
		de *github.DecodeError
	)
	switch {
	case errors.As(err, &te):
		return domain.Failure{Kind: domain.KindTransport, Message: "URL Error: " + te.Reason(), Err: err}
	case errors.As(err, &se):
		return domain.Failure{
			Kind:    domain.KindHTTPStatus,
			Message: fmt.Sprintf("HTTP Error: %d - %s", se.Status, se.Reason()),
			Err:     err,
		}
	case errors.As(err, &ue):
		return domain.Failure{
			Kind:    domain.KindUnexpectedStatus,
			Message: fmt.Sprintf("Error: Received status code %d from GitHub API.", ue.Status),
			Err:     err,
		}
	case errors.As(err, &de):
		return domain.Failure{Kind: domain.KindDecode, Message: unexpected(err), Err: err}
	default:
		return domain.Failure{Kind: domain.KindUnexpected, Message: unexpected(err), Err: err}
	}
}

func unexpected(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return "An unexpected error occurred: " + msg
}
