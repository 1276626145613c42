package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records cart activity and completed checkouts.
type OrderMetrics struct {
	itemsAdded   *prometheus.CounterVec
	itemsRemoved *prometheus.CounterVec
	checkouts    prometheus.Counter
	orderTotals  prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	itemsAdded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Line item additions grouped by configuration kind.",
	}, []string{"kind"})
	itemsRemoved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_items_removed_total",
		Help: "Line item removals grouped by removal mode.",
	}, []string{"mode"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Completed checkouts.",
	})
	orderTotals := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_total_dollars",
		Help:    "Distribution of checkout totals in dollars.",
		Buckets: []float64{10, 25, 50, 75, 100, 150, 250},
	})
	reg.MustRegister(itemsAdded, itemsRemoved, checkouts, orderTotals)
	return &OrderMetrics{
		itemsAdded:   itemsAdded,
		itemsRemoved: itemsRemoved,
		checkouts:    checkouts,
		orderTotals:  orderTotals,
	}
}

// IncItemAdded increments the add counter for the given configuration kind.
func (o *OrderMetrics) IncItemAdded(kind string) {
	if o == nil || o.itemsAdded == nil {
		return
	}
	o.itemsAdded.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncItemRemoved increments the removal counter. Mode is "decrement" or
// "delete".
func (o *OrderMetrics) IncItemRemoved(mode string) {
	if o == nil || o.itemsRemoved == nil {
		return
	}
	o.itemsRemoved.WithLabelValues(normalizeLabel(mode)).Inc()
}

// ObserveCheckout records one completed checkout and its dollar total.
func (o *OrderMetrics) ObserveCheckout(totalDollars float64) {
	if o == nil || o.checkouts == nil {
		return
	}
	o.checkouts.Inc()
	o.orderTotals.Observe(totalDollars)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
