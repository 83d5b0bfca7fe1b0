// Package api reads registry records through the indexing REST service
// instead of the chain. The service lags the chain by its indexing interval,
// so reads here are cheap but may be slightly stale.
package api

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	ometrics "github.com/qcidev/qci-registry/metrics"
	"github.com/qcidev/qci-registry/registry"
)

const (
	clientTimeout = 10 * time.Second
	retryCount    = 3
	retryWaitTime = 500 * time.Millisecond
	cacheSize     = 512
	cacheTTL      = 30 * time.Second
)

// ErrNotFound is returned when the service has no record for the number.
var ErrNotFound = errors.New("record not found")

// Client wraps the REST service. Single-record responses are cached for a
// short TTL keyed by record number.
type Client struct {
	http  *resty.Client
	cache *expirable.LRU[uint64, *registry.QCI]
}

func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(clientTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime)
	return &Client{
		http:  client,
		cache: expirable.NewLRU[uint64, *registry.QCI](cacheSize, nil, cacheTTL),
	}
}

// recordPayload is the service's JSON shape for one record. Timestamps are
// unix seconds and status is the display name.
type recordPayload struct {
	QCINumber          uint64 `json:"qciNumber"`
	Title              string `json:"title"`
	ChainName          string `json:"chainName"`
	ContentHash        string `json:"contentHash"`
	IPFSUrl            string `json:"ipfsUrl"`
	Author             string `json:"author"`
	CreatedAt          int64  `json:"createdAt"`
	LastUpdated        int64  `json:"lastUpdated"`
	Version            uint64 `json:"version"`
	Status             string `json:"status"`
	Implementor        string `json:"implementor"`
	ImplementationDate int64  `json:"implementationDate"`
	SnapshotProposalID string `json:"snapshotProposalId"`

	// Backend extras, not part of the on-chain record.
	CID      string `json:"cid,omitempty"`
	CachedAt int64  `json:"cachedAt,omitempty"`
}

type listPayload struct {
	QCIs  []recordPayload `json:"qcis"`
	Total int             `json:"total"`
}

type healthPayload struct {
	Status           string `json:"status"`
	LastIndexedBlock uint64 `json:"lastIndexedBlock"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// GetQCI fetches a single record, serving repeats from the cache until the
// TTL lapses.
func (c *Client) GetQCI(ctx context.Context, number uint64) (*registry.QCI, error) {
	if cached, ok := c.cache.Get(number); ok {
		ometrics.RegistryStats.APICacheHitCounter.Inc(1)
		return cached, nil
	}
	ometrics.RegistryStats.APICacheMissCounter.Inc(1)

	var payload recordPayload
	var apiErr errorPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		SetError(&apiErr).
		Get(fmt.Sprintf("/v1/qcis/%d", number))
	if err != nil {
		return nil, fmt.Errorf("cannot query record service: %w", err)
	}
	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("QCI-%d: %w", number, ErrNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("record service returned %s: %s", resp.Status(), apiErr.Error)
	}

	q, err := payload.toQCI()
	if err != nil {
		return nil, err
	}
	c.cache.Add(number, q)
	return q, nil
}

// ListOptions filter the listing server-side. Zero values mean no filter.
type ListOptions struct {
	ChainName string
	Status    string
}

// ListQCIs fetches all records matching opts. List responses are not cached;
// the service already serves them from its own index.
func (c *Client) ListQCIs(ctx context.Context, opts ListOptions) ([]*registry.QCI, error) {
	req := c.http.R().SetContext(ctx)
	if opts.ChainName != "" {
		req.SetQueryParam("chain", opts.ChainName)
	}
	if opts.Status != "" {
		req.SetQueryParam("status", opts.Status)
	}

	var payload listPayload
	var apiErr errorPayload
	resp, err := req.SetResult(&payload).SetError(&apiErr).Get("/v1/qcis")
	if err != nil {
		return nil, fmt.Errorf("cannot query record service: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("record service returned %s: %s", resp.Status(), apiErr.Error)
	}

	out := make([]*registry.QCI, 0, len(payload.QCIs))
	for _, rec := range payload.QCIs {
		q, err := rec.toQCI()
		if err != nil {
			log.Warn("Skipping undecodable record from service",
				"qci_number", rec.QCINumber, "err", err)
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// Health checks the service and returns the last block it indexed.
func (c *Client) Health(ctx context.Context) (uint64, error) {
	var payload healthPayload
	resp, err := c.http.R().SetContext(ctx).SetResult(&payload).Get("/v1/health")
	if err != nil {
		return 0, fmt.Errorf("cannot query record service: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("record service unhealthy: %s", resp.Status())
	}
	if payload.Status != "ok" {
		return payload.LastIndexedBlock, fmt.Errorf("record service unhealthy: %q", payload.Status)
	}
	return payload.LastIndexedBlock, nil
}

func (p recordPayload) toQCI() (*registry.QCI, error) {
	status, err := registry.ParseStatus(p.Status)
	if err != nil {
		return nil, fmt.Errorf("QCI-%d: %w", p.QCINumber, err)
	}
	q := &registry.QCI{
		Number:             new(big.Int).SetUint64(p.QCINumber),
		Title:              p.Title,
		ChainName:          p.ChainName,
		ContentHash:        common.HexToHash(p.ContentHash),
		IPFSUrl:            p.IPFSUrl,
		Author:             common.HexToAddress(p.Author),
		CreatedAt:          unixTime(p.CreatedAt),
		LastUpdated:        unixTime(p.LastUpdated),
		Version:            new(big.Int).SetUint64(p.Version),
		Status:             status,
		RawStatus:          status.Key(),
		Implementor:        p.Implementor,
		ImplementationDate: unixTime(p.ImplementationDate),
		SnapshotProposalID: p.SnapshotProposalID,
	}
	return q, nil
}

func unixTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
