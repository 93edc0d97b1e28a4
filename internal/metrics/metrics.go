package metrics

import (
	"net/http"
	"strconv"

	"github.com/homedash/homedash/internal/event_bus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homedash"

type Metrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	records   *prometheus.Desc
	requests  *prometheus.CounterVec
}

// New creates the application metrics on a dedicated registry, together with the
// standard Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_mutations_total",
			Help:      "Store mutations by collection and operation.",
		}, []string{"collection", "operation"}),
		records: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "store_records"),
			"Records currently held per collection.",
			[]string{"collection"}, nil),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
	}
	registry.MustRegister(
		m.mutations,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Subscribe starts counting store mutations published on bus.
func (m *Metrics) Subscribe(bus *event_bus.EventBus) (unsubscribe func()) {
	return event_bus.SubscribeTyped(bus, event_bus.CollectionChangedEvent,
		func(e event_bus.EventT[event_bus.CollectionChanged]) error {
			m.mutations.WithLabelValues(e.Data.Collection, string(e.Data.Op)).Inc()
			return nil
		})
}

// TrackRecords exposes the collection lengths reported by sizes. They are read on
// every scrape, so the gauge follows the store even when change events of concurrent
// mutations are delivered out of order.
func (m *Metrics) TrackRecords(sizes func() map[string]int) {
	m.registry.MustRegister(recordsCollector{desc: m.records, sizes: sizes})
}

func (m *Metrics) ObserveRequest(method string, code int) {
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type recordsCollector struct {
	desc  *prometheus.Desc
	sizes func() map[string]int
}

func (c recordsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c recordsCollector) Collect(ch chan<- prometheus.Metric) {
	for collection, size := range c.sizes() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(size), collection)
	}
}
