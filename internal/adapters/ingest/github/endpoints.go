package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxEventsBody caps a single events page; GitHub returns 30 events by default
var maxEventsBody int64 = 8 << 20

var (
	errNotArray = errors.New("expected a JSON array of events")
	errTooLarge = fmt.Errorf("events page exceeds %d MiB", maxEventsBody>>20)
)

// UserEventsPath returns the events path for login. The login is not escaped
func UserEventsPath(login string) string {
	return "/users/" + login + "/events"
}

// UserEvents fetches the first page of public events for login
// A null element stays a nil entry so callers can reject it
func (c *Client) UserEvents(ctx context.Context, login string) ([]*Event, error) {
	path := UserEventsPath(login)
	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnexpectedStatusError{Status: resp.StatusCode}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxEventsBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > maxEventsBody {
		return nil, &DecodeError{Err: errTooLarge}
	}
	var out []*Event
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if out == nil {
		return nil, &DecodeError{Err: errNotArray}
	}
	return out, nil
}
