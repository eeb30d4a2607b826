package github

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	perr "github-activity/internal/platform/errors"
)

// TransportError wraps a failure to get any response at all (DNS, connect, TLS, cancelled context)
type TransportError struct {
	URL string
	Err error
}

// Error interface
func (e *TransportError) Error() string { return fmt.Sprintf("github transport: %s", e.Reason()) }

// Unwrap interface
func (e *TransportError) Unwrap() error { return e.Err }

// Code maps to the project error code
func (e *TransportError) Code() perr.ErrorCode { return perr.ErrorCodeUnavailable }

// Reason returns the underlying cause without the url.Error "Get <url>:" prefix
func (e *TransportError) Reason() string {
	var ue *url.Error
	if errors.As(e.Err, &ue) && ue.Err != nil {
		return ue.Err.Error()
	}
	if e.Err == nil {
		return "unknown transport error"
	}
	return e.Err.Error()
}

// StatusError wraps non-2xx HTTP responses from GitHub
type StatusError struct {
	Status     int
	StatusLine string // as received, e.g. "404 Not Found"
}

// Error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("github status %d %s", e.Status, e.Reason())
}

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

// Code maps the upstream status to the project error code
func (e *StatusError) Code() perr.ErrorCode {
	switch {
	case e.Status == http.StatusNotFound:
		return perr.ErrorCodeNotFound
	case e.Status == http.StatusUnauthorized:
		return perr.ErrorCodeUnauthorized
	case e.Status == http.StatusForbidden:
		return perr.ErrorCodeForbidden
	case e.Status == http.StatusTooManyRequests:
		return perr.ErrorCodeTooManyRequests
	case e.Status >= 500:
		return perr.ErrorCodeUnavailable
	default:
		return perr.ErrorCodeUnknown
	}
}

// Reason returns the reason phrase from the status line, falling back to the canonical text
func (e *StatusError) Reason() string {
	return reasonPhrase(e.Status, e.StatusLine)
}

// UnexpectedStatusError is a 2xx response other than 200 where a JSON body was expected
type UnexpectedStatusError struct {
	Status int
}

// Error interface
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("github unexpected status %d", e.Status)
}

// DecodeError reports a response body that is not the expected JSON document
type DecodeError struct {
	Err error
}

// Error interface
func (e *DecodeError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *DecodeError) Unwrap() error { return e.Err }

// Code maps to the project error code
func (e *DecodeError) Code() perr.ErrorCode { return perr.ErrorCodeJSON }

// reasonPhrase strips the numeric code from a status line like "404 Not Found"
func reasonPhrase(code int, statusLine string) string {
	s := strings.TrimSpace(statusLine)
	if rest, ok := strings.CutPrefix(s, strconv.Itoa(code)); ok {
		if r := strings.TrimSpace(rest); r != "" {
			return r
		}
	}
	return http.StatusText(code)
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// IsTransport reports whether err is a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsStatus reports whether err is a StatusError
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// IsDecode reports whether err is a DecodeError
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
