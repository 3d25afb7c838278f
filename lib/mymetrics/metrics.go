// Package mymetrics holds the prometheus collectors of the storefront.
package mymetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const (
	OutcomeDispatched          = "dispatched"
	OutcomeEmptyCart           = "empty_cart"
	OutcomeIncompleteInfo      = "incomplete_customer_info"
	OutcomeInvalidInfo         = "invalid_customer_info"
	OutcomeNotConfigured       = "destination_not_configured"
	OutcomeFallbackDestination = "fallback_destination"
	OutcomeLaunchFailed        = "launch_failed"
)

type Metrics struct {
	checkoutDispatch *prometheus.CounterVec
	cartItems        prometheus.Gauge
	cartSubtotal     prometheus.Gauge
	catalogEvents    *prometheus.CounterVec
}

// New registers the storefront metrics on the provided registerer; a nil registerer disables them.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	checkoutDispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkout_dispatch_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	cartItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_cart_items",
		Help: "Number of pieces in the cart.",
	})
	cartSubtotal := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_cart_subtotal",
		Help: "Subtotal of the cart in the shop currency.",
	})
	catalogEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_events_total",
		Help: "Catalog events received by type.",
	}, []string{"type"})
	reg.MustRegister(checkoutDispatch, cartItems, cartSubtotal, catalogEvents)
	return &Metrics{
		checkoutDispatch: checkoutDispatch,
		cartItems:        cartItems,
		cartSubtotal:     cartSubtotal,
		catalogEvents:    catalogEvents,
	}
}

func (m *Metrics) CheckoutOutcome(outcome string) {
	if m == nil || m.checkoutDispatch == nil {
		return
	}
	m.checkoutDispatch.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CartChanged(itemCount int, subtotal decimal.Decimal) {
	if m == nil || m.cartItems == nil {
		return
	}
	m.cartItems.Set(float64(itemCount))
	m.cartSubtotal.Set(subtotal.InexactFloat64())
}

func (m *Metrics) CatalogEvent(eventType string) {
	if m == nil || m.catalogEvents == nil {
		return
	}
	if eventType == "" {
		eventType = "unknown"
	}
	m.catalogEvents.WithLabelValues(eventType).Inc()
}
