package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the transport. A nil *Metrics records nothing.
type Metrics struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	purges   prometheus.Counter
}

// NewMetrics creates the transport collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "communityos_client_in_flight_requests",
			Help: "Backend requests currently in flight.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "communityos_client_requests_total",
			Help: "Backend requests by method and status; status is \"error\" when no response arrived.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "communityos_client_request_duration_seconds",
			Help:    "Backend request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		purges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "communityos_client_session_purges_total",
			Help: "Stored sessions removed after the backend answered 401.",
		}),
	}
	reg.MustRegister(m.inFlight, m.requests, m.duration, m.purges)
	return m
}

func (m *Metrics) start() time.Time {
	if m == nil {
		return time.Time{}
	}
	m.inFlight.Inc()
	return time.Now()
}

func (m *Metrics) done(method string, status int, started time.Time) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(method, label).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}

func (m *Metrics) purged() {
	if m == nil {
		return
	}
	m.purges.Inc()
}
