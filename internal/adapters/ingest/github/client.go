// Package github provides a minimal GitHub REST v3 client for reading public user activity
package github

import (
	"context"
	"net/http"
	"strings"
	"time"

	perr "github-activity/internal/platform/errors"
	"github-activity/internal/platform/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github-activity/internal/adapters/ingest/github"

// DefaultBaseURL is the public GitHub REST API
const DefaultBaseURL = "https://api.github.com"

// Options configures the Client
type Options struct {
	BaseURL string

	// UserAgent is only sent when set; empty keeps the Go default
	UserAgent string

	// Timeout of zero keeps the http.Client default (no timeout)
	Timeout time.Duration

	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client

	// TracerProvider defaults to the global one, a no-op unless tracing was set up
	TracerProvider trace.TracerProvider
}

// Client is an unauthenticated GitHub REST client issuing exactly one request per call
type Client struct {
	http   *http.Client
	opts   Options
	log    logger.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewClient creates a new Client with defaults applied
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Client{
		http:   hc,
		opts:   o,
		log:    *logger.Named("github"),
		tracer: tp.Tracer(tracerName),
		now:    time.Now,
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// Get issues a single GET for path and returns the response for any 2xx status
// Non-2xx responses are drained, closed and returned as *StatusError
// Transport failures are returned as *TransportError. The caller owns the body on success
// The span is local only; no trace headers are sent upstream
func (c *Client) Get(ctx context.Context, path string) (_ *http.Response, err error) {
	url := c.opts.BaseURL + path

	ctx, span := c.tracer.Start(ctx, "github GET", trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", url),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "github new request failed")
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Dur("latency", lat).Msg("github transport error")
		return nil, &TransportError{URL: url, Err: err}
	}

	c.log.Debug().
		Str("method", http.MethodGet).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Str("rate_remaining", resp.Header.Get("X-RateLimit-Remaining")).
		Msg("github http response")
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = drainAndClose(resp.Body)
		return nil, &StatusError{Status: resp.StatusCode, StatusLine: resp.Status}
	}
	return resp, nil
}
