package metrics

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/ethereum/go-ethereum/metrics/exp"
)

var (
	RegistryStats struct {
		// TxSubmittedCounter counts registry transactions sent to the node
		TxSubmittedCounter metrics.Counter
		// TxConfirmedCounter counts transactions with a successful receipt
		TxConfirmedCounter metrics.Counter
		// TxRevertedCounter counts mined but reverted transactions
		TxRevertedCounter metrics.Counter
		// NextQCINumberGauge last observed value of nextQCINumber()
		NextQCINumberGauge metrics.Gauge
		// ReadBatchMeter rate of batched record reads
		ReadBatchMeter metrics.Meter
		// RecordsReadCounter counts records decoded from the chain
		RecordsReadCounter metrics.Counter
		// WatcherBlockGauge last block processed by the status watcher
		WatcherBlockGauge metrics.Gauge
		// StatusTransitionCounter counts decoded StatusChanged events
		StatusTransitionCounter metrics.Counter
		// APICacheHitCounter / APICacheMissCounter track the REST client cache
		APICacheHitCounter  metrics.Counter
		APICacheMissCounter metrics.Counter
	}
)

func init() {
	// Stats are usable without explicit setup; main re-registers them on
	// its own registry when metrics are enabled.
	InitAndRegisterStats(metrics.NewRegistry())
}

func InitAndRegisterStats(r metrics.Registry) {
	metrics.Enabled = true

	RegistryStats.TxSubmittedCounter = metrics.NewRegisteredCounter("tx_submitted", r)
	RegistryStats.TxConfirmedCounter = metrics.NewRegisteredCounter("tx_confirmed", r)
	RegistryStats.TxRevertedCounter = metrics.NewRegisteredCounter("tx_reverted", r)
	RegistryStats.NextQCINumberGauge = metrics.NewRegisteredGauge("next_qci_number", r)
	RegistryStats.ReadBatchMeter = metrics.NewRegisteredMeter("read_batches", r)
	RegistryStats.RecordsReadCounter = metrics.NewRegisteredCounter("records_read", r)
	RegistryStats.WatcherBlockGauge = metrics.NewRegisteredGauge("watcher_block", r)
	RegistryStats.StatusTransitionCounter = metrics.NewRegisteredCounter("status_transitions", r)
	RegistryStats.APICacheHitCounter = metrics.NewRegisteredCounter("api_cache_hits", r)
	RegistryStats.APICacheMissCounter = metrics.NewRegisteredCounter("api_cache_misses", r)
}

// Serve exposes the registry on an HTTP endpoint in expvar format.
func Serve(r metrics.Registry, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Info("Starting metrics server", "addr", addr)
	mux := http.NewServeMux()
	mux.Handle("/debug/metrics", exp.ExpHandler(r))
	return http.ListenAndServe(addr, mux)
}
