// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Scan metrics
	AccountsScanned        prometheus.Counter
	DecodeFailures         prometheus.Counter
	TruncatedRegions       prometheus.Counter
	ExtensionsDetected     *prometheus.CounterVec
	UnrecognizedExtensions prometheus.Counter

	// Watch metrics
	NotificationsReceived prometheus.Counter
	HighestSlotSeen       prometheus.Gauge

	// Latency metrics
	ScanLatency prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "token2022_parser"
	}

	return &Metrics{
		// Scan metrics
		AccountsScanned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "accounts_scanned_total",
			Help:      "Total number of accounts decoded and scanned",
		}),
		DecodeFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "decode_failures_total",
			Help:      "Total number of accounts whose base record failed to decode",
		}),
		TruncatedRegions: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "truncated_regions_total",
			Help:      "Total number of accounts with a truncated TLV extension region",
		}),
		ExtensionsDetected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "extensions_detected_total",
			Help:      "Total number of extensions detected by name",
		}, []string{"extension"}),
		UnrecognizedExtensions: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "unrecognized_extensions_total",
			Help:      "Total number of extensions with type codes absent from the catalog",
		}),

		// Watch metrics
		NotificationsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "notifications_received_total",
			Help:      "Total number of program account notifications received",
		}),
		HighestSlotSeen: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "highest_slot_seen",
			Help:      "Highest Solana slot number seen",
		}),

		// Latency metrics
		ScanLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "account_scan_latency_seconds",
			Help:      "Per-account decode and scan latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveResult updates the scan counters for one completed result.
func (m *Metrics) ObserveResult(res domain.ScanResult) {
	m.AccountsScanned.Inc()
	if res.DecodeErr != "" {
		m.DecodeFailures.Inc()
	}
	if res.Truncated {
		m.TruncatedRegions.Inc()
	}
	for _, ext := range res.Extensions {
		m.ExtensionsDetected.WithLabelValues(ext.String()).Inc()
		if !ext.Known() {
			m.UnrecognizedExtensions.Inc()
		}
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
