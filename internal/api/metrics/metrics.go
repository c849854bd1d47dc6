// Package metrics defines and registers the custom Prometheus metrics for the
// NeoBank dev backend. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics via echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "neobank"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ProfileFetchesTotal counts /user_info requests.
// Label:
//   - result: "success" or "rejected" — rejections are what force a client
//     back to the login page.
var ProfileFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_fetches_total",
		Help:      "Total number of profile fetches, by result.",
	},
	[]string{"result"},
)
