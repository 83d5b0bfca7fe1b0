package registry

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/qcidev/qci-registry/bindings"
)

var statusChangedTopic = crypto.Keccak256Hash([]byte("StatusChanged(uint256,bytes32,bytes32)"))

type fakeLogClient struct {
	head    uint64
	headErr error
	logs    []types.Log
	queries []ethereum.FilterQuery
}

func (f *fakeLogClient) BlockNumber(ctx context.Context) (uint64, error) {
	return f.head, f.headErr
}

func (f *fakeLogClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.queries = append(f.queries, q)
	return f.logs, nil
}

func (f *fakeLogClient) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	panic("not used")
}

func statusChangedLog(number int64, from, to Status, block uint64) types.Log {
	var data []byte
	oldKey, newKey := from.Key(), to.Key()
	data = append(data, oldKey[:]...)
	data = append(data, newKey[:]...)
	return types.Log{
		Topics:      []common.Hash{statusChangedTopic, common.BigToHash(big.NewInt(number))},
		Data:        data,
		BlockNumber: block,
		TxHash:      common.HexToHash("0xabc"),
	}
}

func TestWatcherPollDeliversTransitions(t *testing.T) {
	client := &fakeLogClient{
		head: 120,
		logs: []types.Log{
			statusChangedLog(4, StatusDraft, StatusReadyForSnapshot, 111),
			statusChangedLog(9, StatusReadyForSnapshot, StatusPostedToSnapshot, 118),
		},
	}
	filterer, err := bindings.NewQCIRegistryFilterer(common.Address{}, client)
	require.NoError(t, err)

	w := NewWatcher(client, filterer, time.Second, 100)
	out := make(chan StatusTransition, 4)
	require.NoError(t, w.poll(context.Background(), out))

	require.Len(t, out, 2)
	first := <-out
	require.Equal(t, int64(4), first.Number.Int64())
	require.Equal(t, StatusDraft, first.Old)
	require.Equal(t, StatusReadyForSnapshot, first.New)
	require.Equal(t, uint64(111), first.BlockNumber)

	second := <-out
	require.Equal(t, StatusPostedToSnapshot, second.New)

	// The scanned range picks up after the resume block.
	require.Equal(t, uint64(120), w.LastBlock())
	require.Len(t, client.queries, 1)
	require.Equal(t, int64(101), client.queries[0].FromBlock.Int64())
	require.Equal(t, int64(120), client.queries[0].ToBlock.Int64())
}

func TestWatcherPollNoNewBlocks(t *testing.T) {
	client := &fakeLogClient{head: 50}
	filterer, err := bindings.NewQCIRegistryFilterer(common.Address{}, client)
	require.NoError(t, err)

	w := NewWatcher(client, filterer, time.Second, 50)
	out := make(chan StatusTransition, 1)
	require.NoError(t, w.poll(context.Background(), out))
	require.Empty(t, out)
	require.Empty(t, client.queries)
}
