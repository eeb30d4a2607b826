// Package metrics is a scrape-mode Prometheus registry with small metric interfaces
// so callers never depend on client_golang types beyond the option structs
package metrics

import (
	"errors"
	"net/http"

	perr "github-activity/internal/platform/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter only goes up
type Counter interface {
	Inc()
	Add(float64)
}

// CounterVec is a Counter with labels
type CounterVec interface {
	With(prometheus.Labels) Counter
}

// Observer records samples, e.g. durations in seconds
type Observer interface {
	Observe(float64)
}

// HistogramVec is an Observer with labels
type HistogramVec interface {
	With(prometheus.Labels) Observer
}

// Registry owns a private prometheus registry; the global default one is never used
type Registry struct {
	prom *prometheus.Registry
}

// New returns a registry with the Go runtime and process collectors already registered
func New() (*Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "registering go collector")
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "registering process collector")
	}
	return &Registry{prom: reg}, nil
}

// Handler serves the registry in the Prometheus text or OpenMetrics format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prom, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// register adds c, or returns the collector already registered under the same descriptor
func register[C prometheus.Collector](r *Registry, c C) (C, error) {
	if err := r.prom.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "registering metric")
	}
	return c, nil
}

// NewCounterVec creates and registers a CounterVec. Registering the same name twice shares it
func (r *Registry) NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error) {
	c, err := register(r, prometheus.NewCounterVec(opts, labels))
	if err != nil {
		return nil, err
	}
	return counterVec{c}, nil
}

// NewHistogramVec creates and registers a HistogramVec. Registering the same name twice shares it
func (r *Registry) NewHistogramVec(opts prometheus.HistogramOpts, labels []string) (HistogramVec, error) {
	h, err := register(r, prometheus.NewHistogramVec(opts, labels))
	if err != nil {
		return nil, err
	}
	return histogramVec{h}, nil
}

type counterVec struct{ v *prometheus.CounterVec }

func (c counterVec) With(l prometheus.Labels) Counter { return c.v.With(l) }

type histogramVec struct{ v *prometheus.HistogramVec }

func (h histogramVec) With(l prometheus.Labels) Observer { return h.v.With(l) }
