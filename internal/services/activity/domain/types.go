// Package domain holds the activity types shared by the service and its transports
package domain

import "strings"

// NoActivity is the sentinel line for a feed with no events
const NoActivity = "No recent activity found."

// ErrorKind classifies why a fetch produced no activity lines
type ErrorKind uint8

const (
	// KindNone means the fetch succeeded
	KindNone ErrorKind = iota

	// KindTransport is a DNS, connect or TLS failure; no response was received
	KindTransport

	// KindHTTPStatus is an error status (anything outside 2xx)
	KindHTTPStatus

	// KindUnexpectedStatus is a 2xx status other than 200
	KindUnexpectedStatus

	// KindDecode is a body that is not a JSON array of events
	KindDecode

	// KindUnexpected covers malformed events and anything else
	KindUnexpected
)

var kindNames = [...]string{
	KindNone:             "none",
	KindTransport:        "transport",
	KindHTTPStatus:       "http_status",
	KindUnexpectedStatus: "unexpected_status",
	KindDecode:           "decode",
	KindUnexpected:       "unexpected",
}

// String returns the stable wire name of the kind
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText renders the kind by name in JSON payloads
func (k ErrorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Failure is the rendered form of a fetch error
type Failure struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Outcome is the tagged result of one fetch: either Lines or a Failure
type Outcome struct {
	Username string
	Lines    []string
	Failure  *Failure
}

// Ok builds a successful outcome
func Ok(username string, lines []string) Outcome {
	return Outcome{Username: username, Lines: lines}
}

// Failed builds a failed outcome
func Failed(username string, f Failure) Outcome {
	return Outcome{Username: username, Failure: &f}
}

// OK reports whether the fetch produced activity lines
func (o Outcome) OK() bool { return o.Failure == nil }

// Kind returns the failure kind or KindNone
func (o Outcome) Kind() ErrorKind {
	if o.Failure == nil {
		return KindNone
	}
	return o.Failure.Kind
}

// Render returns the printable lines for either branch of the outcome
func (o Outcome) Render() []string {
	if o.Failure != nil {
		return []string{o.Failure.Message}
	}
	return o.Lines
}

// String joins the rendered lines, one per line, each prefixed with "- "
func (o Outcome) String() string {
	var b strings.Builder
	for _, l := range o.Render() {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
