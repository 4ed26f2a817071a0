package sim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are registered directly against the default registerer rather
// than pushed to a gateway: this package has no opinion on how a host
// exposes them (promhttp.Handler, a push gateway, a sidecar scrape), so
// it only produces the collectors and lets the host wire up transport.
var (
	planDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "goap_plan_duration_seconds",
		Help:    "Time spent searching for a plan, per planning attempt.",
		Buckets: prometheus.DefBuckets,
	})

	plansInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "goap_plans_in_flight",
		Help: "Number of planning jobs currently outstanding.",
	})

	plansAdopted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "goap_plans_adopted_total",
		Help: "Number of times a PlanCollector pass adopted a new, different plan.",
	})

	plansCleared = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "goap_plans_cleared_total",
		Help: "Number of times a PlanCollector pass found no plan and cleared the current one.",
	})
)

func init() {
	prometheus.MustRegister(planDuration, plansInFlight, plansAdopted, plansCleared)
}

func observePlanDuration(d time.Duration) {
	planDuration.Observe(d.Seconds())
}
