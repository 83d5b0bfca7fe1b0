package registry

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/qcidev/qci-registry/bindings"
)

var testRegistryAddr = common.HexToAddress("0x00000000000000000000000000000000000c1a55")

// fakeBackend serves canned view results keyed by method selector and
// records submitted transactions.
type fakeBackend struct {
	t   *testing.T
	abi *abi.ABI

	contentHashExists bool
	owner             common.Address
	editor            bool
	recordStatus      Status

	sent    []*types.Transaction
	receipt *types.Receipt
}

func newFakeBackend(t *testing.T) *fakeBackend {
	parsed, err := bindings.QCIRegistryMetaData.GetAbi()
	require.NoError(t, err)
	return &fakeBackend{t: t, abi: parsed, recordStatus: StatusDraft}
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	method, err := f.abi.MethodById(msg.Data[:4])
	require.NoError(f.t, err)
	switch method.Name {
	case "contentHashExists":
		return method.Outputs.Pack(f.contentHashExists)
	case "owner":
		return method.Outputs.Pack(f.owner)
	case "editors":
		return method.Outputs.Pack(f.editor)
	case "qcis":
		return method.Outputs.Pack(
			big.NewInt(9), "A proposal", "Ethereum", [32]byte{1}, "ipfs://bafytest",
			common.HexToAddress("0x01"), big.NewInt(1700000000), big.NewInt(1700000100),
			big.NewInt(1), [32]byte(f.recordStatus.Key()), "", big.NewInt(0), "",
		)
	}
	f.t.Fatalf("unexpected call to %s", method.Name)
	return nil, nil
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{1}, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{1}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1)}, nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1000000000), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1000000000), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return 120000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if f.receipt == nil {
		return nil, ethereum.NotFound
	}
	f.receipt.TxHash = txHash
	return f.receipt, nil
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1337), nil
}

func (f *fakeBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	panic("not used")
}

func newTestClient(t *testing.T, backend *fakeBackend, waitForReceipt bool) *Client {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	cfg := &Config{
		chainID:         big.NewInt(1337),
		registryAddress: testRegistryAddr,
		privateKey:      key,
		gasPrice:        big.NewInt(1000000000),
		waitForReceipt:  waitForReceipt,
	}
	contract, err := bindings.NewQCIRegistry(testRegistryAddr, backend)
	require.NoError(t, err)
	auth, err := NewAuth(cfg, backend)
	require.NoError(t, err)
	backend.owner = auth.Address()

	return &Client{
		cfg:      cfg,
		chainID:  cfg.chainID,
		backend:  backend,
		contract: contract,
		auth:     auth,
	}
}

// qciCreatedLog builds a receipt log as the contract would emit it.
func qciCreatedLog(t *testing.T, parsed *abi.ABI, number int64, author common.Address) *types.Log {
	ev := parsed.Events["QCICreated"]
	data, err := ev.Inputs.NonIndexed().Pack("A proposal", [32]byte{1})
	require.NoError(t, err)
	return &types.Log{
		Address: testRegistryAddr,
		Topics: []common.Hash{
			ev.ID,
			common.BigToHash(big.NewInt(number)),
			common.BytesToHash(author.Bytes()),
		},
		Data: data,
	}
}

func TestCreateRejectsDuplicateContent(t *testing.T) {
	backend := newFakeBackend(t)
	backend.contentHashExists = true
	client := newTestClient(t, backend, false)

	_, _, err := client.Create(context.Background(), Draft{
		Title:       "A proposal",
		ChainName:   "Ethereum",
		ContentHash: common.HexToHash("0x01"),
		IPFSUrl:     "ipfs://bafytest",
	})
	require.ErrorIs(t, err, ErrDuplicateContent)
	require.Empty(t, backend.sent)
}

func TestCreateExtractsAssignedNumber(t *testing.T) {
	backend := newFakeBackend(t)
	client := newTestClient(t, backend, true)
	backend.receipt = &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
		Logs:        []*types.Log{qciCreatedLog(t, backend.abi, 7, client.auth.Address())},
	}

	tx, number, err := client.Create(context.Background(), Draft{
		Title:       "A proposal",
		ChainName:   "Ethereum",
		ContentHash: common.HexToHash("0x01"),
		IPFSUrl:     "ipfs://bafytest",
	})
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Equal(t, int64(7), number.Int64())
	require.Len(t, backend.sent, 1)
}

func TestRevertedReceiptIsError(t *testing.T) {
	backend := newFakeBackend(t)
	client := newTestClient(t, backend, true)
	backend.receipt = &types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(10),
	}

	_, err := client.Update(context.Background(), big.NewInt(9), Draft{
		Title:       "A proposal",
		ContentHash: common.HexToHash("0x02"),
		IPFSUrl:     "ipfs://bafytest",
	}, "fix typo")
	require.ErrorIs(t, err, ErrTxReverted)
	// The transaction was still submitted; only its execution failed.
	require.Len(t, backend.sent, 1)
}

func TestSetStatusRejectsBackwardTransition(t *testing.T) {
	backend := newFakeBackend(t)
	backend.recordStatus = StatusPostedToSnapshot
	client := newTestClient(t, backend, false)

	_, err := client.SetStatus(context.Background(), big.NewInt(9), StatusDraft)
	require.ErrorIs(t, err, ErrBackwardTransition)
	require.Empty(t, backend.sent)

	// Re-posting the same terminal status is not a backward move.
	_, err = client.SetStatus(context.Background(), big.NewInt(9), StatusPostedToSnapshot)
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
}

func TestEnsureRejectsUnknownSigner(t *testing.T) {
	backend := newFakeBackend(t)
	client := newTestClient(t, backend, false)
	backend.owner = common.HexToAddress("0xdead")
	backend.editor = false

	require.ErrorIs(t, client.ensure(context.Background()), errInvalidSigningKey)

	backend.editor = true
	require.NoError(t, client.ensure(context.Background()))
}
