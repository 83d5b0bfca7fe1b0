package registry

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/qcidev/qci-registry/retry"
)

// DefaultDialTimeout is a default timeout for dialing a client.
const DefaultDialTimeout = 1 * time.Minute

const (
	defaultRetryCount = 30
	defaultRetryTime  = 2 * time.Second
)

// DialEthClientWithTimeout attempts to dial the node using the provided URL,
// retrying with a fixed backoff until the timeout elapses.
func DialEthClientWithTimeout(ctx context.Context, timeout time.Duration, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c, err := dialRPCClientWithBackoff(ctx, url)
	if err != nil {
		return nil, err
	}

	return ethclient.NewClient(c), nil
}

// DialRPCClientWithTimeout is the raw-client variant of
// DialEthClientWithTimeout, for callers that batch requests themselves.
func DialRPCClientWithTimeout(ctx context.Context, timeout time.Duration, url string) (*rpc.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return dialRPCClientWithBackoff(ctx, url)
}

// Dials a JSON-RPC endpoint repeatedly, with a backoff, until a client
// connection is established.
func dialRPCClientWithBackoff(ctx context.Context, url string) (*rpc.Client, error) {
	bOff := retry.Fixed(defaultRetryTime)
	return retry.Do(ctx, defaultRetryCount, bOff, func() (*rpc.Client, error) {
		return rpc.DialContext(ctx, url)
	})
}
