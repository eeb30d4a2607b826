// Package logger is the zerolog setup shared by the CLI and the API
// One root logger per process; request-scoped children come from C
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github-activity/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string // zerolog level name; unknown names mean debug
	Format      string // "console" or "json"
	Service     string
	Writer      io.Writer // defaults to stdout
	WithCaller  bool
	SampleEvery int
}

// FromEnv is FromEnvWith over debug console defaults
func FromEnv() Options {
	return FromEnvWith(Options{Level: "debug", Format: "console"})
}

// FromEnvWith overlays LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and LOG_SAMPLE_EVERY on def
// It reads through config/raw because the full config package logs through us
func FromEnvWith(def Options) Options {
	rc := raw.New().Prefix("LOG_")
	def.Level = strings.ToLower(rc.Get("LEVEL", def.Level))
	def.Format = strings.ToLower(rc.Get("FORMAT", def.Format))
	def.Service = rc.Get("SERVICE", def.Service)
	def.WithCaller = rc.GetBool("CALLER", def.WithCaller)
	def.SampleEvery = rc.GetInt("SAMPLE_EVERY", def.SampleEvery)
	return def
}

var (
	once   sync.Once
	root   atomic.Pointer[Logger]
	inited atomic.Bool
)

// New builds a logger from opt without touching the process root
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		_, tty := w.(*os.File)
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !tty}
	}

	zc := zerolog.New(w).Level(level(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		zc = zc.Str("service", opt.Service)
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// Init sets the process root logger. Only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
		inited.Store(true)
	})
}

// Get returns the root logger, initialising it from env on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

func level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyUsername
)

// WithRequest stores the request id and username on ctx. Empty values are skipped
func WithRequest(ctx context.Context, reqID, username string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if username != "" {
		ctx = context.WithValue(ctx, keyUsername, username)
	}
	return ctx
}

// C returns a root child carrying request_id and username from ctx
func C(ctx context.Context) *Logger {
	zc := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		zc = zc.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyUsername).(string); s != "" {
		zc = zc.Str("username", s)
	}
	l := zc.Logger()
	return &l
}

// Named returns a root child with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
