package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lmittmann/w3"
	"github.com/lmittmann/w3/module/eth"
	"github.com/lmittmann/w3/w3types"

	ometrics "github.com/qcidev/qci-registry/metrics"
	"github.com/qcidev/qci-registry/retry"
)

const (
	// DefaultPageSize is the number of records fetched per JSON-RPC batch.
	DefaultPageSize = 50

	readRetries   = 3
	recordCacheSz = 1024
)

var (
	qcisFunc       = w3.MustNewFunc("qcis(uint256)", "uint256,string,string,bytes32,string,address,uint256,uint256,uint256,bytes32,string,uint256,string")
	nextNumberFunc = w3.MustNewFunc("nextQCINumber()", "uint256")
)

// Reader aggregates registry records straight from the chain. Reads are
// retry-wrapped and range reads are fetched page by page, each page as a
// single JSON-RPC batch. A small LRU keyed by record number skips rebuilding
// records whose on-chain version has not moved.
type Reader struct {
	w3c      *w3.Client
	registry common.Address
	pageSize int
	cache    *lru.Cache[uint64, *QCI]
}

func NewReader(client *rpc.Client, registry common.Address, pageSize int) *Reader {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cache, _ := lru.New[uint64, *QCI](recordCacheSz)
	return &Reader{
		w3c:      w3.NewClient(client),
		registry: registry,
		pageSize: pageSize,
		cache:    cache,
	}
}

// NextNumber returns the number the next created record will be assigned.
// Registry numbering starts at 1, so NextNumber-1 is the record count.
func (r *Reader) NextNumber(ctx context.Context) (*big.Int, error) {
	return retry.Do(ctx, readRetries, retry.Exponential(), func() (*big.Int, error) {
		var next big.Int
		err := r.w3c.CallCtx(ctx, eth.CallFunc(r.registry, nextNumberFunc).Returns(&next))
		if err != nil {
			return nil, fmt.Errorf("failed to read nextQCINumber: %w", err)
		}
		ometrics.RegistryStats.NextQCINumberGauge.Update(next.Int64())
		return &next, nil
	})
}

// Get fetches a single record. A gap number (never created) returns
// ethereum.NotFound-style semantics via a nil record and an error.
func (r *Reader) Get(ctx context.Context, number uint64) (*QCI, error) {
	recs, err := retry.Do(ctx, readRetries, retry.Exponential(), func() ([]*QCI, error) {
		return r.fetchPage(ctx, number, number)
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("QCI-%d does not exist", number)
	}
	return recs[0], nil
}

// List fetches records in [from, to] inclusive, page by page. Pages that
// partially fail are kept: the successes are returned together with an
// aggregated error for the failures.
func (r *Reader) List(ctx context.Context, from, to uint64) ([]*QCI, error) {
	if from == 0 {
		from = 1 // the registry never assigns number 0
	}
	if to < from {
		return nil, nil
	}

	var out []*QCI
	var errs *multierror.Error
	for start := from; start <= to; start += uint64(r.pageSize) {
		end := start + uint64(r.pageSize) - 1
		if end > to {
			end = to
		}
		recs, err := r.fetchPage(ctx, start, end)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("page [%d,%d]: %w", start, end, err))
		}
		out = append(out, recs...)
		if ctx.Err() != nil {
			errs = multierror.Append(errs, ctx.Err())
			break
		}
	}
	return out, errs.ErrorOrNil()
}

// All fetches every record currently in the registry.
func (r *Reader) All(ctx context.Context) ([]*QCI, error) {
	next, err := r.NextNumber(ctx)
	if err != nil {
		return nil, err
	}
	if next.Cmp(big.NewInt(1)) <= 0 {
		return nil, nil
	}
	return r.List(ctx, 1, next.Uint64()-1)
}

// fetchPage reads records [from, to] as one batched RPC request. Individual
// call failures inside the batch are aggregated; decodable records are still
// returned. Records with number 0 are gaps and get skipped.
func (r *Reader) fetchPage(ctx context.Context, from, to uint64) ([]*QCI, error) {
	n := int(to - from + 1)
	raws := make([]rawRecord, n)
	calls := make([]w3types.Caller, n)
	for i := 0; i < n; i++ {
		raw := &raws[i]
		calls[i] = eth.CallFunc(r.registry, qcisFunc, new(big.Int).SetUint64(from+uint64(i))).Returns(
			&raw.QciNumber, &raw.Title, &raw.ChainName, &raw.ContentHash, &raw.IpfsUrl,
			&raw.Author, &raw.CreatedAt, &raw.LastUpdated, &raw.Version, &raw.Status,
			&raw.Implementor, &raw.ImplementationDate, &raw.SnapshotProposalId,
		)
	}

	ometrics.RegistryStats.ReadBatchMeter.Mark(1)
	start := time.Now()
	err := r.w3c.CallCtx(ctx, calls...)

	var failed map[int]error
	if err != nil {
		var callErrs w3.CallErrors
		if !errors.As(err, &callErrs) {
			return nil, fmt.Errorf("batch read failed: %w", err)
		}
		failed = make(map[int]error)
		for i, callErr := range callErrs {
			if callErr != nil {
				failed[i] = callErr
			}
		}
	}

	var out []*QCI
	var errs *multierror.Error
	for i := range raws {
		number := from + uint64(i)
		if callErr, ok := failed[i]; ok {
			errs = multierror.Append(errs, fmt.Errorf("QCI-%d: %w", number, callErr))
			continue
		}
		if raws[i].QciNumber == nil || raws[i].QciNumber.Sign() == 0 {
			continue // gap: number was never assigned
		}
		out = append(out, r.decode(raws[i]))
	}

	ometrics.RegistryStats.RecordsReadCounter.Inc(int64(len(out)))
	log.Debug("Fetched registry page", "from", from, "to", to,
		"records", len(out), "elapsed", time.Since(start))
	return out, errs.ErrorOrNil()
}

// decode converts a raw tuple, reusing the cached record when the on-chain
// version has not changed.
func (r *Reader) decode(raw rawRecord) *QCI {
	number := raw.QciNumber.Uint64()
	if cached, ok := r.cache.Get(number); ok && cached.Version != nil && raw.Version != nil &&
		cached.Version.Cmp(raw.Version) == 0 {
		return cached
	}
	q, err := fromRaw(raw)
	if err != nil {
		// Keep the record; the raw status is preserved on it.
		log.Warn("Unrecognized on-chain status, treating as Draft",
			"qci_number", number, "raw_status", common.Hash(raw.Status).Hex(), "err", err)
	}
	r.cache.Add(number, q)
	return q
}
