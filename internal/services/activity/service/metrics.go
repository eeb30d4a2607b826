package service

import (
	"time"

	"github-activity/internal/platform/metrics"
	"github-activity/internal/services/activity/domain"

	"github.com/prometheus/client_golang/prometheus"
)

type promRecorder struct {
	fetches  metrics.CounterVec
	duration metrics.HistogramVec
}

// NewRecorder registers github_activity_fetches_total and github_activity_fetch_duration_seconds,
// both labelled by outcome kind
func NewRecorder(reg *metrics.Registry) (Recorder, error) {
	fetches, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "github_activity_fetches_total",
		Help: "Activity fetches by outcome kind",
	}, []string{"kind"})
	if err != nil {
		return nil, err
	}
	duration, err := reg.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "github_activity_fetch_duration_seconds",
		Help:    "Activity fetch latency including the upstream call",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	if err != nil {
		return nil, err
	}
	return promRecorder{fetches: fetches, duration: duration}, nil
}

func (p promRecorder) Fetched(kind domain.ErrorKind, elapsed time.Duration) {
	l := prometheus.Labels{"kind": kind.String()}
	p.fetches.With(l).Inc()
	p.duration.With(l).Observe(elapsed.Seconds())
}
