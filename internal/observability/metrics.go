package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ironhall/gym-service/internal/domain"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	errors        *prometheus.CounterVec
	qrIssued      prometheus.Counter
	qrRedeem      *prometheus.CounterVec
	checkIns      prometheus.Counter
	membersTotal  prometheus.Gauge
	membersActive prometheus.Gauge
	membersSoon   prometheus.Gauge
}

// NewMetrics registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"path", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gym_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_http_errors_total",
			Help: "Error responses by route, method and error code.",
		}, []string{"path", "method", "code"}),
		qrIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gym_qr_tokens_issued_total",
			Help: "QR tokens issued.",
		}),
		qrRedeem: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_qr_logins_total",
			Help: "QR login attempts by outcome.",
		}, []string{"outcome"}),
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gym_member_checkins_total",
			Help: "Member check-ins recorded.",
		}),
		membersTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gym_members_total",
			Help: "Registered members.",
		}),
		membersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gym_members_active",
			Help: "Members whose membership has not ended.",
		}),
		membersSoon: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gym_members_expiring_soon",
			Help: "Active members inside the expiry warning window.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.latency, m.errors,
		m.qrIssued, m.qrRedeem, m.checkIns,
		m.membersTotal, m.membersActive, m.membersSoon,
	)
	return m
}

// Registry exposes the registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

// QRIssued counts an issued token.
func (m *Metrics) QRIssued() {
	if m == nil {
		return
	}
	m.qrIssued.Inc()
}

// QRLogin counts a QR login attempt by outcome.
func (m *Metrics) QRLogin(outcome string) {
	if m == nil {
		return
	}
	m.qrRedeem.WithLabelValues(outcome).Inc()
}

// CheckIn counts a recorded check-in.
func (m *Metrics) CheckIn() {
	if m == nil {
		return
	}
	m.checkIns.Inc()
}

// SetMemberCounts updates the membership gauges.
func (m *Metrics) SetMemberCounts(c domain.MemberCounts) {
	if m == nil {
		return
	}
	m.membersTotal.Set(float64(c.Total))
	m.membersActive.Set(float64(c.Active))
	m.membersSoon.Set(float64(c.ExpiringSoon))
}
