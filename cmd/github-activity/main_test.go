package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github-activity/internal/adapters/ingest/github"
	"github-activity/internal/services/activity/domain"
	"github-activity/internal/services/activity/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	got []string
	out domain.Outcome
}

func (s *stubFetcher) FetchActivity(_ context.Context, username string) domain.Outcome {
	s.got = append(s.got, username)
	return s.out
}

func TestRun_WrongArgCount(t *testing.T) {
	for name, args := range map[string][]string{
		"none": nil,
		"two":  {"a", "b"},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			called := false
			code := run(args, &buf, func() domain.FetcherPort {
				called = true
				return &stubFetcher{}
			})
			assert.Equal(t, 1, code)
			assert.Equal(t, usage+"\n", buf.String())
			assert.False(t, called, "no fetch on usage error")
		})
	}
}

func TestRun_PrintsLines(t *testing.T) {
	f := &stubFetcher{out: domain.Ok("octocat", []string{"Starred a/b", "Forked c/d"})}
	var buf bytes.Buffer

	code := run([]string{"octocat"}, &buf, func() domain.FetcherPort { return f })
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"octocat"}, f.got)
	assert.Equal(t, "- Starred a/b\n- Forked c/d\n", buf.String())
}

func TestRun_FailureStillExitsZero(t *testing.T) {
	f := &stubFetcher{out: domain.Failed("ghost", domain.Failure{
		Kind:    domain.KindHTTPStatus,
		Message: "HTTP Error: 404 - Not Found",
	})}
	var buf bytes.Buffer

	code := run([]string{"ghost"}, &buf, func() domain.FetcherPort { return f })
	assert.Equal(t, 0, code)
	assert.Equal(t, "- HTTP Error: 404 - Not Found\n", buf.String())
}

func TestRun_EndToEndAgainstFakeGitHub(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/octocat/events", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"type":"PushEvent","repo":{"name":"o/r"},"payload":{"commits":[{},{},{}]}},
			{"type":"IssuesEvent","repo":{"name":"o/r"},"payload":{"action":"opened"}},
			{"type":"CreateEvent","repo":{"name":"o/new"}}
		]`))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	code := run([]string{"octocat"}, &buf, func() domain.FetcherPort {
		return service.New(github.NewClient(github.Options{BaseURL: ts.URL}))
	})
	assert.Equal(t, 0, code)
	assert.Equal(t,
		"- Pushed 3 commits to o/r\n- Opened a new issue in o/r\n- Performed CreateEvent on o/new\n",
		buf.String())
}

func TestRun_NoActivity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	code := run([]string{"quiet"}, &buf, func() domain.FetcherPort {
		return service.New(github.NewClient(github.Options{BaseURL: ts.URL}))
	})
	assert.Equal(t, 0, code)
	assert.Equal(t, "- "+domain.NoActivity+"\n", buf.String())
}
