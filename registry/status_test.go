package registry

import (
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestStatusKeyRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusReadyForSnapshot, StatusPostedToSnapshot} {
		got, err := ParseStatus(s.Key())
		require.NoError(t, err, s.String())
		require.Equal(t, s, got, s.String())
	}
}

func TestParseStatus(t *testing.T) {
	readyKey := crypto.Keccak256Hash([]byte("Ready for Snapshot"))

	var legacyPadded [32]byte
	copy(legacyPadded[:], "Posted to Snapshot")

	tests := []struct {
		name    string
		in      any
		want    Status
		wantErr bool
	}{
		{name: "uint8 index", in: uint8(1), want: StatusReadyForSnapshot},
		{name: "int index", in: 2, want: StatusPostedToSnapshot},
		{name: "int64 index", in: int64(0), want: StatusDraft},
		{name: "big.Int index", in: big.NewInt(1), want: StatusReadyForSnapshot},
		{name: "big.Int out of range", in: big.NewInt(7), wantErr: true},
		{name: "negative int", in: -1, wantErr: true},

		{name: "float index", in: float64(2), want: StatusPostedToSnapshot},
		{name: "float fraction", in: 1.5, wantErr: true},
		{name: "float NaN", in: math.NaN(), wantErr: true},

		{name: "hash key", in: readyKey, want: StatusReadyForSnapshot},
		{name: "bytes32 key", in: [32]byte(readyKey), want: StatusReadyForSnapshot},
		{name: "legacy padded ascii", in: legacyPadded, want: StatusPostedToSnapshot},
		{name: "unknown hash", in: crypto.Keccak256Hash([]byte("Withdrawn")), wantErr: true},
		{name: "zero hash", in: common.Hash{}, wantErr: true},

		{name: "display name", in: "Draft", want: StatusDraft},
		{name: "name lowercase", in: "ready for snapshot", want: StatusReadyForSnapshot},
		{name: "name dashes", in: "posted-to-snapshot", want: StatusPostedToSnapshot},
		{name: "name extra space", in: "  Ready for Snapshot ", want: StatusReadyForSnapshot},
		{name: "digit string", in: "1", want: StatusReadyForSnapshot},
		{name: "scientific notation", in: "1e+0", want: StatusReadyForSnapshot},
		{name: "scientific notation upper", in: "2E0", want: StatusPostedToSnapshot},
		{name: "scientific notation fraction", in: "1.5e0", wantErr: true},
		{name: "hex key string", in: readyKey.Hex(), want: StatusReadyForSnapshot},
		{name: "short hex string", in: "0x01", wantErr: true},
		{name: "empty string", in: "", wantErr: true},
		{name: "garbage string", in: "definitely not a status", wantErr: true},

		{name: "unsupported type", in: struct{}{}, wantErr: true},
		{name: "nil big.Int", in: (*big.Int)(nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				var unknownErr *ErrUnknownStatus
				require.ErrorAs(t, err, &unknownErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusOrDraft(t *testing.T) {
	require.Equal(t, StatusDraft, ParseStatusOrDraft("nonsense"))
	require.Equal(t, StatusPostedToSnapshot, ParseStatusOrDraft("Posted to Snapshot"))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "Draft", StatusDraft.String())
	require.Equal(t, "Ready for Snapshot", StatusReadyForSnapshot.String())
	require.Equal(t, "Posted to Snapshot", StatusPostedToSnapshot.String())
	require.Equal(t, "Status(9)", Status(9).String())
}

func TestStatusKeyInvalid(t *testing.T) {
	require.Equal(t, common.Hash{}, Status(9).Key())
}
