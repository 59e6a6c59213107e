package prommetrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/seglist"
	"github.com/hupe1980/seglist/internal/resource"
)

// Observer exports seglist segment events as Prometheus metrics.
type Observer struct {
	segmentsAllocated prometheus.Counter
	segmentsReleased  prometheus.Counter
	segmentsLive      prometheus.Gauge
	slotsLive         prometheus.Gauge
	failures          *prometheus.CounterVec
}

var _ seglist.MetricsObserver = (*Observer)(nil)

// Option configures an Observer.
type Option func(*config)

type config struct {
	namespace   string
	constLabels prometheus.Labels
}

// WithNamespace sets the metric namespace (default "seglist").
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithConstLabels attaches labels to every metric, e.g. a list name.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) { c.constLabels = labels }
}

// New creates an Observer and registers its collectors with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, opts ...Option) (*Observer, error) {
	cfg := config{namespace: "seglist"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		segmentsAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "segments_allocated_total",
			Help:        "Total segments obtained from the allocator",
			ConstLabels: cfg.constLabels,
		}),
		segmentsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "segments_released_total",
			Help:        "Total segments handed back to the allocator",
			ConstLabels: cfg.constLabels,
		}),
		segmentsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.namespace,
			Name:        "segments_live",
			Help:        "Segments currently owned by lists",
			ConstLabels: cfg.constLabels,
		}),
		slotsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.namespace,
			Name:        "slots_live",
			Help:        "Element slots currently owned by lists",
			ConstLabels: cfg.constLabels,
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "allocation_failures_total",
			Help:        "Allocation requests refused, by reason",
			ConstLabels: cfg.constLabels,
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{
		o.segmentsAllocated, o.segmentsReleased, o.segmentsLive, o.slotsLive, o.failures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, opts ...Option) *Observer {
	o, err := New(reg, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

// OnSegmentAllocated implements seglist.MetricsObserver.
func (o *Observer) OnSegmentAllocated(slots int) {
	o.segmentsAllocated.Inc()
	o.segmentsLive.Inc()
	o.slotsLive.Add(float64(slots))
}

// OnSegmentReleased implements seglist.MetricsObserver.
func (o *Observer) OnSegmentReleased(slots int) {
	o.segmentsReleased.Inc()
	o.segmentsLive.Dec()
	o.slotsLive.Sub(float64(slots))
}

// OnAllocationFailed implements seglist.MetricsObserver.
func (o *Observer) OnAllocationFailed(_ int, err error) {
	o.failures.WithLabelValues(failureReason(err)).Inc()
}

func failureReason(err error) string {
	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return "memory_limit"
	}
	return "allocator"
}
