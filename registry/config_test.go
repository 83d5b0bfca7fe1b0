package registry

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/qcidev/qci-registry/flags"
)

func parseConfig(t *testing.T, args ...string) *Config {
	t.Helper()
	var cfg *Config
	app := cli.NewApp()
	app.Flags = flags.Flags
	app.Action = func(ctx *cli.Context) error {
		cfg = NewConfig(ctx)
		return nil
	}
	args = append([]string{"qci-registry"}, args...)
	require.NoError(t, app.Run(args))
	return cfg
}

func TestNewConfig(t *testing.T) {
	cfg := parseConfig(t,
		"--registry-address", "0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2",
		"--eth-http-url", "http://localhost:9545",
		"--chain-id", "5000",
		"--private-key", "0xda5b1d29ce4...")

	require.Equal(t, common.HexToAddress("0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2"), cfg.RegistryAddress())
	require.Equal(t, "http://localhost:9545", cfg.EthHttpUrl())
	require.EqualValues(t, 5000, cfg.chainID.Uint64())
	// Malformed keys are logged, not fatal; dialing catches the nil key.
	require.Nil(t, cfg.privateKey)
	require.False(t, cfg.waitForReceipt)
	require.Equal(t, 50, cfg.PageSize())
}

func TestNewConfigOptionals(t *testing.T) {
	cfg := parseConfig(t,
		"--registry-address", "0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2",
		"--transaction-gas-price", "200000000",
		"--wait-for-receipt",
		"--page-size", "10",
		"--poll-interval", "5s",
		"--api-url", "https://qci.example.org")

	require.EqualValues(t, 200000000, cfg.gasPrice.Uint64())
	require.True(t, cfg.waitForReceipt)
	require.Equal(t, 10, cfg.PageSize())
	require.Equal(t, 5*time.Second, cfg.PollInterval())
	require.Equal(t, "https://qci.example.org", cfg.APIUrl())
}
