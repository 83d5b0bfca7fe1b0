package registry

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/qcidev/qci-registry/bindings"
)

func testRawRecord(number, version int64) rawRecord {
	var raw rawRecord
	raw.QciNumber = big.NewInt(number)
	raw.Title = "Test proposal"
	raw.ChainName = "Ethereum"
	raw.ContentHash = common.HexToHash("0xdeadbeef")
	raw.IpfsUrl = "ipfs://bafybeigdyrzt"
	raw.Author = common.HexToAddress("0x01")
	raw.CreatedAt = big.NewInt(1700000000)
	raw.LastUpdated = big.NewInt(1700000100)
	raw.Version = big.NewInt(version)
	raw.Status = StatusDraft.Key()
	raw.ImplementationDate = big.NewInt(0)
	return raw
}

func TestReaderDecodeCachesByVersion(t *testing.T) {
	r := NewReader(nil, common.Address{}, 0)

	first := r.decode(testRawRecord(7, 1))
	require.Equal(t, int64(7), first.Number.Int64())

	// Same number and version: the cached record is reused.
	again := r.decode(testRawRecord(7, 1))
	require.Same(t, first, again)

	// Version bump invalidates the cached record.
	raw := testRawRecord(7, 2)
	raw.Status = StatusReadyForSnapshot.Key()
	updated := r.decode(raw)
	require.NotSame(t, first, updated)
	require.Equal(t, StatusReadyForSnapshot, updated.Status)
}

func TestReaderDecodeUnknownStatusKeepsRecord(t *testing.T) {
	r := NewReader(nil, common.Address{}, 0)

	raw := testRawRecord(3, 1)
	raw.Status = common.HexToHash("0x1234")
	q := r.decode(raw)
	require.NotNil(t, q)
	require.Equal(t, StatusDraft, q.Status)
	require.Equal(t, common.HexToHash("0x1234"), q.RawStatus)
}

func TestReaderListEmptyRange(t *testing.T) {
	r := NewReader(nil, common.Address{}, 25)

	recs, err := r.List(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Empty(t, recs)
}

type rpcCallRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// qcisServer answers batched eth_call requests for qcis(uint256), keyed by
// the requested record number. Record 3 is a gap (zero tuple) and record 4
// fails with an execution error.
func qcisServer(t *testing.T, batchSizes *[]int) *httptest.Server {
	parsed, err := bindings.QCIRegistryMetaData.GetAbi()
	require.NoError(t, err)
	outputs := parsed.Methods["qcis"].Outputs

	packRecord := func(number int64) string {
		out, err := outputs.Pack(
			big.NewInt(number), "Test proposal", "Ethereum", [32]byte{0xde, 0xad}, "ipfs://bafybeigdyrzt",
			common.HexToAddress("0x01"), big.NewInt(1700000000), big.NewInt(1700000100),
			big.NewInt(1), [32]byte(StatusDraft.Key()), "", big.NewInt(0), "",
		)
		require.NoError(t, err)
		return hexutil.Encode(out)
	}
	gap, err := outputs.Pack(
		big.NewInt(0), "", "", [32]byte{}, "",
		common.Address{}, big.NewInt(0), big.NewInt(0),
		big.NewInt(0), [32]byte{}, "", big.NewInt(0), "",
	)
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		batch := true
		var reqs []rpcCallRequest
		if json.Unmarshal(body, &reqs) != nil {
			// A single call arrives as a bare object, not a one-element array.
			batch = false
			var req rpcCallRequest
			require.NoError(t, json.Unmarshal(body, &req))
			reqs = []rpcCallRequest{req}
		}
		*batchSizes = append(*batchSizes, len(reqs))

		resps := make([]map[string]any, 0, len(reqs))
		for _, req := range reqs {
			require.Equal(t, "eth_call", req.Method)
			var msg struct {
				Data  hexutil.Bytes `json:"data"`
				Input hexutil.Bytes `json:"input"`
			}
			require.NoError(t, json.Unmarshal(req.Params[0], &msg))
			data := msg.Data
			if len(data) == 0 {
				data = msg.Input
			}
			number := new(big.Int).SetBytes(data[len(data)-32:]).Int64()

			resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
			switch number {
			case 3:
				resp["result"] = hexutil.Encode(gap)
			case 4:
				resp["error"] = map[string]any{"code": 3, "message": "execution reverted"}
			default:
				resp["result"] = packRecord(number)
			}
			resps = append(resps, resp)
		}
		w.Header().Set("Content-Type", "application/json")
		if batch {
			require.NoError(t, json.NewEncoder(w).Encode(resps))
		} else {
			require.NoError(t, json.NewEncoder(w).Encode(resps[0]))
		}
	}))
}

func TestReaderListPaginates(t *testing.T) {
	var batchSizes []int
	srv := qcisServer(t, &batchSizes)
	defer srv.Close()

	rpcClient, err := rpc.Dial(srv.URL)
	require.NoError(t, err)
	defer rpcClient.Close()

	r := NewReader(rpcClient, testRegistryAddr, 2)
	recs, err := r.List(context.Background(), 1, 5)

	// A page size of 2 over [1,5] means batches of 2, 2 and 1.
	require.Equal(t, []int{2, 2, 1}, batchSizes)

	// Record 3 is a gap and record 4 failed; 1, 2 and 5 come back once each.
	require.Len(t, recs, 3)
	numbers := make([]int64, 0, len(recs))
	for _, q := range recs {
		numbers = append(numbers, q.Number.Int64())
	}
	require.Equal(t, []int64{1, 2, 5}, numbers)

	// The failed call is reported without discarding the rest of the page.
	require.Error(t, err)
	require.Contains(t, err.Error(), "QCI-4")
	require.Contains(t, err.Error(), "page [3,4]")
}

func TestReaderGet(t *testing.T) {
	var batchSizes []int
	srv := qcisServer(t, &batchSizes)
	defer srv.Close()

	rpcClient, err := rpc.Dial(srv.URL)
	require.NoError(t, err)
	defer rpcClient.Close()

	r := NewReader(rpcClient, testRegistryAddr, 2)

	q, err := r.Get(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), q.Number.Int64())
	require.Equal(t, StatusDraft, q.Status)

	// A gap number was never assigned.
	_, err = r.Get(context.Background(), 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "QCI-3 does not exist")
}
