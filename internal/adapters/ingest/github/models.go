package github

import "encoding/json"

// Event is one element of the /users/{user}/events feed
// Type is a pointer and Repo/Payload stay raw so callers can tell an absent key from an empty one
// Fields we never read (actor, created_at, ...) are left undecoded so their shape cannot fail a page
type Event struct {
	Type    *string         `json:"type"`
	Repo    json.RawMessage `json:"repo"`
	Payload json.RawMessage `json:"payload"`
}

// HasRepo reports whether the repo key was present in the document
func (e Event) HasRepo() bool { return e.Repo != nil }
