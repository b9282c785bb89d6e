package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Exporter publishes search statistics as prometheus series. Register it once
// per process and hand each searcher its own Collector from it.
type Exporter struct {
	decisions    *prometheus.CounterVec
	states       *prometheus.CounterVec
	uniqueStates *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	tableSize    *prometheus.GaugeVec
}

func NewExporter(reg prometheus.Registerer) (*Exporter, error) {
	labels := []string{"player", "strategy"}
	e := &Exporter{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "og",
			Subsystem: "search",
			Name:      "decisions_total",
			Help:      "Number of move decisions taken by the searcher.",
		}, labels),
		states: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "og",
			Subsystem: "search",
			Name:      "states_total",
			Help:      "Child states considered, transposition hits included.",
		}, labels),
		uniqueStates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "og",
			Subsystem: "search",
			Name:      "unique_states_total",
			Help:      "Child states searched because the transposition table missed.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "og",
			Subsystem: "search",
			Name:      "decision_duration_seconds",
			Help:      "Wall time of one move decision.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, labels),
		tableSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "og",
			Subsystem: "search",
			Name:      "transposition_keys",
			Help:      "Keys held by the player's transposition table.",
		}, []string{"player"}),
	}

	for _, c := range []prometheus.Collector{e.decisions, e.states, e.uniqueStates, e.duration, e.tableSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Collector returns a collector whose completed decisions are exported under
// the given player label.
func (e *Exporter) Collector(player string) Collector {
	return &exportingCollector{
		collector: collector{},
		exporter:  e,
		player:    player,
	}
}

type exportingCollector struct {
	collector
	exporter *Exporter
	player   string
}

func (m *exportingCollector) Complete() SearchMetric {
	metric := m.collector.Complete()
	e := m.exporter
	e.decisions.WithLabelValues(m.player, metric.Strategy).Inc()
	e.states.WithLabelValues(m.player, metric.Strategy).Add(float64(metric.States))
	e.uniqueStates.WithLabelValues(m.player, metric.Strategy).Add(float64(metric.UniqueStates))
	e.duration.WithLabelValues(m.player, metric.Strategy).Observe(metric.Duration.Seconds())
	e.tableSize.WithLabelValues(m.player).Set(float64(metric.TableSize))
	return metric
}
