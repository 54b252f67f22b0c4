package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API client metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAPIRequestsTotal,
			Help:      HelpTextAPIRequestsTotal,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameAPIRequestDuration,
			Help:      HelpTextAPIRequestDuration,
			Buckets:   APILatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Synchronizer metrics
var (
	SliceLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSliceLoadsTotal,
			Help:      HelpTextSliceLoadsTotal,
		},
		[]string{LabelSlice, LabelResult},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameNotificationsTotal,
			Help:      HelpTextNotificationsTotal,
		},
		[]string{LabelLevel},
	)

	EffectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEffectsTotal,
			Help:      HelpTextEffectsTotal,
		},
		[]string{LabelKind},
	)
)

// Discord front-end metrics
var (
	DiscordCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDiscordCommandsTotal,
			Help:      HelpTextDiscordCommandsTotal,
		},
		[]string{LabelCommand},
	)
)

// Status server metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)
