package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "github-activity/internal/platform/errors"
	kit "github-activity/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewClient(Options{BaseURL: ts.URL})
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Options{})
	assert.Equal(t, "https://api.github.com", c.BaseURL())

	c = NewClient(Options{BaseURL: " http://example.test/ "})
	assert.Equal(t, "http://example.test", c.BaseURL())
}

func TestUserEvents_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/octocat/events", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`[
			{"type":"PushEvent","repo":{"name":"octo/hello"},"payload":{"commits":[{},{}]}},
			{"type":"WatchEvent"}
		]`))
	})

	evs, err := c.UserEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, evs, 2)
	require.NotNil(t, evs[0].Type)
	assert.Equal(t, "PushEvent", *evs[0].Type)
	assert.True(t, evs[0].HasRepo())
	assert.JSONEq(t, `{"name":"octo/hello"}`, string(evs[0].Repo))
	assert.False(t, evs[1].HasRepo())
	assert.Nil(t, evs[1].Payload)
}

func TestUserEvents_EmptyArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	evs, err := c.UserEvents(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, evs)
	assert.Empty(t, evs)
}

func TestUserEvents_UserAgentOnlyWhenSet(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(Options{BaseURL: ts.URL, UserAgent: "github-activity-test"})
	_, err := c.UserEvents(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, "github-activity-test", got)
}

func TestUserEvents_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	_, err := c.UserEvents(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, IsStatus(err))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 404, se.Status)
	assert.Equal(t, "Not Found", se.Reason())
	assert.Equal(t, 404, se.HTTPStatus())
	assert.Equal(t, perr.ErrorCodeNotFound, perr.CodeOf(err))
	assert.False(t, perr.Retryable(err))
}

func TestStatusError_Codes(t *testing.T) {
	cases := map[int]perr.ErrorCode{
		401: perr.ErrorCodeUnauthorized,
		403: perr.ErrorCodeForbidden,
		418: perr.ErrorCodeUnknown,
		429: perr.ErrorCodeTooManyRequests,
		502: perr.ErrorCodeUnavailable,
	}
	for status, want := range cases {
		assert.Equal(t, want, (&StatusError{Status: status}).Code(), "status %d", status)
	}
	assert.True(t, perr.Retryable(&StatusError{Status: 503}))
}

func TestUserEvents_NonOKSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	_, err := c.UserEvents(context.Background(), "u")
	var ue *UnexpectedStatusError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusAccepted, ue.Status)
}

func TestUserEvents_DecodeError(t *testing.T) {
	for name, body := range map[string]string{
		"html":   `<html>oops</html>`,
		"object": `{"message":"hi"}`,
		"null":   `null`,
		"type":   `[{"type":5}]`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := c.UserEvents(context.Background(), "u")
			require.Error(t, err)
			assert.True(t, IsDecode(err), "got %T", err)
			assert.Equal(t, perr.ErrorCodeJSON, perr.CodeOf(err))
		})
	}
}

func TestUserEvents_NullElementIsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"type":"WatchEvent"},null]`))
	})
	evs, err := c.UserEvents(context.Background(), "u")
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.NotNil(t, evs[0])
	assert.Nil(t, evs[1])
}

func TestUserEvents_BodyOverCap(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &maxEventsBody, int64(16))

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"type":"WatchEvent"},{"type":"ForkEvent"}]`))
	})
	_, err := c.UserEvents(context.Background(), "u")
	require.Error(t, err)
	assert.True(t, IsDecode(err), "got %T", err)
	assert.ErrorIs(t, err, errTooLarge)
	assert.Contains(t, err.Error(), "events page exceeds 8 MiB")
}

func TestUserEvents_BodyAtCap(t *testing.T) {
	kit.Serial(t)
	body := `[{"type":"WatchEvent"}]`
	kit.Swap(t, &maxEventsBody, int64(len(body)))

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
	evs, err := c.UserEvents(context.Background(), "u")
	require.NoError(t, err)
	assert.Len(t, evs, 1)
}

func TestUserEvents_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := NewClient(Options{BaseURL: url})
	_, err := c.UserEvents(context.Background(), "u")
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.NotEmpty(t, te.Reason())
	assert.NotContains(t, te.Reason(), "Get ")
	assert.Equal(t, perr.ErrorCodeUnavailable, te.Code())
	assert.True(t, perr.Retryable(err))
}

func TestUserEventsPath_Verbatim(t *testing.T) {
	assert.Equal(t, "/users/a b/events", UserEventsPath("a b"))
	assert.Equal(t, "/users/x/../y/events", UserEventsPath("x/../y"))
}

func TestReasonPhrase(t *testing.T) {
	cases := []struct {
		code int
		line string
		want string
	}{
		{404, "404 Not Found", "Not Found"},
		{403, "403 rate limit exceeded", "rate limit exceeded"},
		{500, "", "Internal Server Error"},
		{418, "418", "I'm a teapot"},
	}
	for _, c := range cases {
		if got := reasonPhrase(c.code, c.line); got != c.want {
			t.Fatalf("reasonPhrase(%d, %q) = %q, want %q", c.code, c.line, got, c.want)
		}
	}
}

func TestGet_RecordsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	var traceparent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("Traceparent")
		http.Error(w, "nope", http.StatusNotFound)
	}))
	t.Cleanup(ts.Close)

	c := NewClient(Options{BaseURL: ts.URL, TracerProvider: tp})
	_, err := c.UserEvents(context.Background(), "ghost")
	require.Error(t, err)
	assert.Empty(t, traceparent)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "github GET", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	var status int64
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "http.response.status_code" {
			status = kv.Value.AsInt64()
		}
	}
	assert.EqualValues(t, 404, status)
}
