package monitoring

import (
	"net/http"
	"time"

	"github.com/chalkcoin/chalkcoin/logx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ledgerPromMetrics struct {
	chainHeight        prometheus.Gauge
	pendingSize        prometheus.Gauge
	sealedBlockCount   prometheus.Counter
	sealDuration       prometheus.Histogram
	proofIterations    prometheus.Histogram
	validationFailures prometheus.Counter
	tamperCount        prometheus.Counter
	panicCount         prometheus.Counter
}

func newLedgerPromMetrics() *ledgerPromMetrics {
	return &ledgerPromMetrics{
		chainHeight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "chalkcoin_chain_height",
				Help: "Number of sealed blocks in the chain, genesis included",
			},
		),
		pendingSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "chalkcoin_pending_transactions",
				Help: "The total unsealed transactions queued in the pending batch",
			},
		),
		sealedBlockCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "chalkcoin_sealed_blocks_total",
				Help: "Total number of blocks sealed since process start",
			},
		),
		sealDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chalkcoin_seal_duration_seconds",
				Help:    "Latency in seconds of the proof-of-work search per sealed block",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
		proofIterations: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chalkcoin_proof_iterations",
				Help:    "Nonces tried before the proof-of-work predicate was satisfied",
				Buckets: prometheus.ExponentialBuckets(16, 4, 12),
			},
		),
		validationFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "chalkcoin_validation_failures_total",
				Help: "Chain validation runs that found a broken link or stale hash",
			},
		),
		tamperCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "chalkcoin_tamper_operations_total",
				Help: "Explicit tamper operations applied to sealed blocks",
			},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "chalkcoin_panic_total",
				Help: "Panics recovered from background goroutines",
			},
		),
	}
}

var metrics = newLedgerPromMetrics()

func SetChainHeight(height int) {
	metrics.chainHeight.Set(float64(height))
}

func SetPendingSize(size int) {
	metrics.pendingSize.Set(float64(size))
}

func IncreaseSealedBlockCount() {
	metrics.sealedBlockCount.Inc()
}

func ObserveSealDuration(start time.Time) {
	metrics.sealDuration.Observe(time.Since(start).Seconds())
}

func ObserveProofIterations(iterations uint64) {
	metrics.proofIterations.Observe(float64(iterations))
}

func IncreaseValidationFailureCount() {
	metrics.validationFailures.Inc()
}

func IncreaseTamperCount() {
	metrics.tamperCount.Inc()
}

func IncreasePanicCount() {
	metrics.panicCount.Inc()
}

// Serve exposes the prometheus endpoint on addr. Blocks until the listener
// fails, so callers run it on its own goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logx.Info("MONITORING", "Serving metrics on ", addr)
	return http.ListenAndServe(addr, mux)
}
