package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry    *prometheus.Registry
	pageRenders *prometheus.CounterVec
	events      *prometheus.CounterVec
	viewsActive prometheus.GaugeFunc
}

// newMetrics builds a per-server registry so that several servers (tests,
// embedded use) never collide on the global one.
func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	f := promauto.With(reg)
	return &metrics{
		registry: reg,
		pageRenders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toolbar",
			Name:      "page_renders_total",
			Help:      "Pages rendered, by route and result.",
		}, []string{"route", "result"}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toolbar",
			Name:      "events_total",
			Help:      "Click events received over the event socket, by result.",
		}, []string{"result"}),
	}
}

func (m *metrics) watchViews(count func() int) {
	m.viewsActive = promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "toolbar",
		Name:      "views_active",
		Help:      "Rendered views still addressable by click events.",
	}, func() float64 { return float64(count()) })
}
