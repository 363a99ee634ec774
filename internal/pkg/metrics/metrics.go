// Package metrics exposes the prometheus counters of the food order service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "foodorder"

// Metrics groups the service counters.
type Metrics struct {
	orderTransitions     *prometheus.CounterVec
	sideEffectFailures   *prometheus.CounterVec
	notificationFailures prometheus.Counter
	loyaltyCoinsAwarded  prometheus.Counter
	promoRedemptions     *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
// It panics when a counter is already registered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Accepted order transitions by resulting status.",
		}, []string{"status"}),
		sideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Best-effort side effects that failed and were rolled back to their savepoint.",
		}, []string{"effect"}),
		notificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_notification_failures_total",
			Help:      "Status-changed notifications that could not be published.",
		}),
		loyaltyCoinsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loyalty_coins_awarded_total",
			Help:      "Loyalty coins credited for delivered orders.",
		}),
		promoRedemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promo_redemptions_total",
			Help:      "Promo codes applied to created orders.",
		}, []string{"code"}),
	}

	reg.MustRegister(
		m.orderTransitions,
		m.sideEffectFailures,
		m.notificationFailures,
		m.loyaltyCoinsAwarded,
		m.promoRedemptions,
	)

	return m
}

// TransitionAccepted counts an accepted transition into status.
func (m *Metrics) TransitionAccepted(status string) {
	if m == nil {
		return
	}
	m.orderTransitions.WithLabelValues(status).Inc()
}

// SideEffectFailed counts a failed best-effort side effect.
func (m *Metrics) SideEffectFailed(effect string) {
	if m == nil {
		return
	}
	m.sideEffectFailures.WithLabelValues(effect).Inc()
}

// NotificationFailed counts a notification that could not be published.
func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notificationFailures.Inc()
}

// CoinsAwarded adds awarded loyalty coins.
func (m *Metrics) CoinsAwarded(coins int) {
	if m == nil || coins <= 0 {
		return
	}
	m.loyaltyCoinsAwarded.Add(float64(coins))
}

// PromoRedeemed counts a promo code applied at checkout.
func (m *Metrics) PromoRedeemed(code string) {
	if m == nil {
		return
	}
	m.promoRedemptions.WithLabelValues(code).Inc()
}
