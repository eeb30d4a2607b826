// Package config reads typed settings from environment variables under a prefix
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github-activity/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. root.Prefix("CORE_API_")
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix returns a child view; prefixes nest
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full variable name for key
func (c Conf) Key(key string) string { return c.prefix + key }

// lookup returns the trimmed value and whether it was non-empty
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.Key(key)))
	return v, v != ""
}

// invalid logs a parse failure and hands back the default
func invalid[T any](c Conf, key, raw string, def T) T {
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", raw).Interface("default", def).Msg("invalid env value; using default")
	return def
}

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; unparsable values log and fall back
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return invalid(c, key, s, def)
	}
	return n
}

// MayBool accepts anything strconv.ParseBool does
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return invalid(c, key, s, def)
	}
	return b
}

// MayRatio parses a float in [0, 1]
func (c Conf) MayRatio(key string, def float64) float64 {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return invalid(c, key, s, def)
	}
	return f
}

// MayDuration parses Go duration syntax ("5s", "1m30s")
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return invalid(c, key, s, def)
	}
	return d
}

// MayURL returns an absolute http(s) URL or def
func (c Conf) MayURL(key, def string) string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid(c, key, s, def)
	}
	return s
}

// MayCSV splits a comma separated list, dropping blanks
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
