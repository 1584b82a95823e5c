package activities

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts activity outcomes. A nil *Metrics records nothing.
type Metrics struct {
	ProductChecks   *prometheus.CounterVec
	AddressChecks   *prometheus.CounterVec
	Acknowledgments *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
}

// NewMetrics creates the activity counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ordertaking",
			Subsystem: "activities",
			Name:      name,
			Help:      help,
		}, labels)
	}
	m := &Metrics{
		ProductChecks:   counter("product_checks_total", "Product code checks by outcome.", "result"),
		AddressChecks:   counter("address_checks_total", "Address checks by outcome.", "result"),
		Acknowledgments: counter("acknowledgments_total", "Acknowledgment sends by outcome.", "result"),
		EventsPublished: counter("events_published_total", "Published events by type.", "type"),
	}
	reg.MustRegister(m.ProductChecks, m.AddressChecks, m.Acknowledgments, m.EventsPublished)
	return m
}

func (m *Metrics) productCheck(result string) {
	if m != nil {
		m.ProductChecks.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) addressCheck(result string) {
	if m != nil {
		m.AddressChecks.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) acknowledgment(result string) {
	if m != nil {
		m.Acknowledgments.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) eventPublished(eventType string) {
	if m != nil {
		m.EventsPublished.WithLabelValues(eventType).Inc()
	}
}
