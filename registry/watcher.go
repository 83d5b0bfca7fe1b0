package registry

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/qcidev/qci-registry/bindings"
	ometrics "github.com/qcidev/qci-registry/metrics"
	"github.com/qcidev/qci-registry/retry"
)

// StatusTransition is a decoded StatusChanged event. Old and New fall back
// to Draft when the on-chain bytes32 is unrecognized; the raw values are
// kept alongside.
type StatusTransition struct {
	Number      *big.Int
	Old, New    Status
	RawOld      common.Hash
	RawNew      common.Hash
	BlockNumber uint64
	TxHash      common.Hash
}

type blockNumberClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// Watcher polls the chain for status transitions and delivers them in log
// order. It resumes from the block after the last one it fully processed, so
// a slow consumer never loses events, though it may see duplicates after a
// restart at the same height.
type Watcher struct {
	client       blockNumberClient
	filterer     *bindings.QCIRegistryFilterer
	pollInterval time.Duration
	lastBlock    uint64
}

// NewWatcher treats startBlock as the last block already processed; scanning
// picks up at startBlock+1. Use 0 to start at the chain head.
func NewWatcher(client blockNumberClient, filterer *bindings.QCIRegistryFilterer, pollInterval time.Duration, startBlock uint64) *Watcher {
	if pollInterval <= 0 {
		pollInterval = 15 * time.Second
	}
	return &Watcher{
		client:       client,
		filterer:     filterer,
		pollInterval: pollInterval,
		lastBlock:    startBlock,
	}
}

// LastBlock is the highest block fully scanned so far.
func (w *Watcher) LastBlock() uint64 {
	return w.lastBlock
}

// Watch polls until ctx is done, sending transitions to out. The channel is
// closed on return. A transient filter failure is retried on the next tick
// without advancing lastBlock.
func (w *Watcher) Watch(ctx context.Context, out chan<- StatusTransition) error {
	defer close(out)

	if w.lastBlock == 0 {
		head, err := retry.Do(ctx, readRetries, retry.Exponential(), func() (uint64, error) {
			return w.client.BlockNumber(ctx)
		})
		if err != nil {
			return fmt.Errorf("cannot resolve chain head: %w", err)
		}
		w.lastBlock = head
	}
	log.Info("Watching for status transitions", "from_block", w.lastBlock,
		"poll_interval", w.pollInterval)

	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			if err := w.poll(ctx, out); err != nil {
				log.Error("Status poll failed, will retry", "err", err)
			}
			timer.Reset(w.pollInterval)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) poll(ctx context.Context, out chan<- StatusTransition) error {
	head, err := w.client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("cannot get block number: %w", err)
	}
	if head <= w.lastBlock {
		return nil
	}
	from := w.lastBlock + 1

	iter, err := w.filterer.FilterStatusChanged(&bind.FilterOpts{
		Start:   from,
		End:     &head,
		Context: ctx,
	}, nil)
	if err != nil {
		return fmt.Errorf("cannot filter StatusChanged in [%d,%d]: %w", from, head, err)
	}
	defer iter.Close()

	for iter.Next() {
		ev := iter.Event
		tr := StatusTransition{
			Number:      ev.QciNumber,
			RawOld:      common.Hash(ev.OldStatus),
			RawNew:      common.Hash(ev.NewStatus),
			BlockNumber: ev.Raw.BlockNumber,
			TxHash:      ev.Raw.TxHash,
		}
		tr.Old = ParseStatusOrDraft(ev.OldStatus)
		tr.New = ParseStatusOrDraft(ev.NewStatus)

		select {
		case out <- tr:
			ometrics.RegistryStats.StatusTransitionCounter.Inc(1)
			log.Info("Status transition", "qci_number", tr.Number,
				"old", tr.Old, "new", tr.New, "block", tr.BlockNumber)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("StatusChanged iterator failed: %w", err)
	}

	w.lastBlock = head
	ometrics.RegistryStats.WatcherBlockGauge.Update(int64(head))
	return nil
}
