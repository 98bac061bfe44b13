package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	HTTPRateLimited      prometheus.Counter

	// Calculator metrics
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	ChannelActivations  *prometheus.CounterVec
	QuotesTotal         prometheus.Counter
	RejectedInputs      *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer to
// expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		HTTPRateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_requests_rate_limited_total",
				Help: "Total number of HTTP requests rejected by the rate limiter",
			},
		),

		CalculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roi_calculations_total",
				Help: "Total number of ROI calculations",
			},
			[]string{"status"},
		),

		CalculationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "roi_calculation_duration_seconds",
				Help:    "ROI calculation duration in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
		),

		ChannelActivations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roi_channel_activations_total",
				Help: "Number of calculations that included each channel",
			},
			[]string{"channel"},
		),

		QuotesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "roi_quotes_total",
				Help: "Total number of managed-service price quotes",
			},
		),

		RejectedInputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roi_rejected_inputs_total",
				Help: "Total number of input snapshots rejected before calculation",
			},
			[]string{"reason"},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) RecordRateLimited() {
	m.HTTPRateLimited.Inc()
}

// Calculation outcome and the channels it covered
func (m *Metrics) RecordCalculation(status string, duration time.Duration, channels []string) {
	m.CalculationsTotal.WithLabelValues(status).Inc()
	m.CalculationDuration.Observe(duration.Seconds())
	for _, ch := range channels {
		m.ChannelActivations.WithLabelValues(ch).Inc()
	}
}

func (m *Metrics) RecordQuote() {
	m.QuotesTotal.Inc()
}

// Input rejected before it reached the calculator
func (m *Metrics) RecordRejectedInput(reason string) {
	m.RejectedInputs.WithLabelValues(reason).Inc()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
