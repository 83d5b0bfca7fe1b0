package registry

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestAuthFixedGasPrice(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	cfg := &Config{
		chainID:    big.NewInt(1),
		privateKey: privateKey,
		gasPrice:   big.NewInt(1000000000),
	}
	auth, err := NewAuth(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(privateKey.PublicKey), auth.Address())

	opts := auth.Opts(context.Background())
	require.Equal(t, auth.Address(), opts.From)
	require.Zero(t, opts.GasPrice.Cmp(cfg.gasPrice))

	// The returned opts are a copy; mutating them must not leak back.
	opts.GasPrice = big.NewInt(1)
	require.Zero(t, auth.Opts(context.Background()).GasPrice.Cmp(cfg.gasPrice))
}

func TestAuthMissingKey(t *testing.T) {
	_, err := NewAuth(&Config{chainID: big.NewInt(1)}, nil)
	require.ErrorIs(t, err, errNoPrivateKey)
}

func TestAuthMissingChainID(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, err = NewAuth(&Config{privateKey: privateKey}, nil)
	require.ErrorIs(t, err, errNoChainID)
}
