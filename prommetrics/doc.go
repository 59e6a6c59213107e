// Package prommetrics exports seglist segment metrics to Prometheus.
//
//	obs := prommetrics.MustNew(prometheus.DefaultRegisterer)
//	l, err := seglist.New[Job](seglist.WithMetricsObserver[Job](obs))
//
// One Observer may be shared by any number of lists; gauges then report
// the totals across all of them.
package prommetrics
