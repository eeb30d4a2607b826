// Package describe turns GitHub user events into one-line activity descriptions
package describe

import (
	"encoding/json"
	"fmt"

	"github-activity/internal/adapters/ingest/github"
)

const (
	// UnknownRepo is rendered when an event carries no repo key
	UnknownRepo = "unknown"

	// MissingType is rendered for events without a type key, matching the historical output
	MissingType = "None"
)

// handler renders one event type given the resolved repo name and the raw payload
type handler func(repo string, payload json.RawMessage) (string, error)

// handlers is the fixed lookup; anything not listed falls through to performed
var handlers = map[string]handler{
	"PushEvent":   pushed,
	"IssuesEvent": issues,
	"WatchEvent":  starred,
	"ForkEvent":   forked,
}

// Describe renders a single event. Malformed events return a *MalformedError
func Describe(ev github.Event) (string, error) {
	repo, err := RepoName(ev)
	if err != nil {
		return "", err
	}

	typ := MissingType
	if ev.Type != nil {
		typ = *ev.Type
	}

	h, ok := handlers[typ]
	if !ok {
		return fmt.Sprintf("Performed %s on %s", typ, repo), nil
	}
	out, err := h(repo, ev.Payload)
	if err != nil {
		return "", withType(err, typ)
	}
	return out, nil
}

// RepoName resolves repo.name, or UnknownRepo when the repo key is absent
func RepoName(ev github.Event) (string, error) {
	if !ev.HasRepo() {
		return UnknownRepo, nil
	}
	var r struct {
		Name *string `json:"name"`
	}
	if isNull(ev.Repo) {
		return "", malformed("repo", "is null", nil)
	}
	if err := json.Unmarshal(ev.Repo, &r); err != nil {
		return "", malformed("repo", "is malformed", err)
	}
	if r.Name == nil {
		return "", malformed("repo.name", "is missing", nil)
	}
	return *r.Name, nil
}

func pushed(repo string, payload json.RawMessage) (string, error) {
	p, err := payloadObject(payload)
	if err != nil {
		return "", err
	}
	raw, ok := p["commits"]
	if !ok {
		return "", malformed("payload.commits", "is missing", nil)
	}
	if isNull(raw) {
		return "", malformed("payload.commits", "is null", nil)
	}
	var commits []json.RawMessage
	if err := json.Unmarshal(raw, &commits); err != nil {
		return "", malformed("payload.commits", "is not an array", err)
	}
	return fmt.Sprintf("Pushed %d commits to %s", len(commits), repo), nil
}

func issues(repo string, payload json.RawMessage) (string, error) {
	p, err := payloadObject(payload)
	if err != nil {
		return "", err
	}
	raw, ok := p["action"]
	if !ok {
		return "", malformed("payload.action", "is missing", nil)
	}
	var action string
	if isNull(raw) {
		return "", malformed("payload.action", "is null", nil)
	}
	if err := json.Unmarshal(raw, &action); err != nil {
		return "", malformed("payload.action", "is not a string", err)
	}
	return fmt.Sprintf("%s a new issue in %s", Capitalize(action), repo), nil
}

func starred(repo string, _ json.RawMessage) (string, error) {
	return "Starred " + repo, nil
}

func forked(repo string, _ json.RawMessage) (string, error) {
	return "Forked " + repo, nil
}

// payloadObject decodes the payload as a JSON object keyed by field
func payloadObject(payload json.RawMessage) (map[string]json.RawMessage, error) {
	if payload == nil {
		return nil, malformed("payload", "is missing", nil)
	}
	if isNull(payload) {
		return nil, malformed("payload", "is null", nil)
	}
	var p map[string]json.RawMessage
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, malformed("payload", "is not an object", err)
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
