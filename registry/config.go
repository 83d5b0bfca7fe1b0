package registry

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/qcidev/qci-registry/flags"
)

// Config represents the configuration options for the registry client
type Config struct {
	chainID         *big.Int
	ethHttpUrl      string
	registryAddress common.Address
	privateKey      *ecdsa.PrivateKey
	gasPrice        *big.Int
	waitForReceipt  bool
	pageSize        int
	pollInterval    time.Duration
	apiUrl          string

	// Metrics config
	MetricsEnabled bool
	MetricsHTTP    string
	MetricsPort    int
}

// NewConfig creates a new Config from the cli context
func NewConfig(ctx *cli.Context) *Config {
	cfg := Config{}
	cfg.ethHttpUrl = ctx.String(flags.EthHttpUrlFlag.Name)
	addr := ctx.String(flags.RegistryAddressFlag.Name)
	cfg.registryAddress = common.HexToAddress(addr)
	cfg.pageSize = ctx.Int(flags.PageSizeFlag.Name)
	cfg.pollInterval = ctx.Duration(flags.PollIntervalFlag.Name)
	cfg.apiUrl = ctx.String(flags.APIUrlFlag.Name)

	if ctx.IsSet(flags.PrivateKeyFlag.Name) {
		hex := ctx.String(flags.PrivateKeyFlag.Name)
		hex = strings.TrimPrefix(hex, "0x")
		key, err := crypto.HexToECDSA(hex)
		if err != nil {
			log.Error(fmt.Sprintf("Option %q: %v", flags.PrivateKeyFlag.Name, err))
		}
		cfg.privateKey = key
	}

	if ctx.IsSet(flags.ChainIDFlag.Name) {
		chainID := ctx.Uint64(flags.ChainIDFlag.Name)
		cfg.chainID = new(big.Int).SetUint64(chainID)
	}

	if ctx.IsSet(flags.TransactionGasPriceFlag.Name) {
		gasPrice := ctx.Uint64(flags.TransactionGasPriceFlag.Name)
		cfg.gasPrice = new(big.Int).SetUint64(gasPrice)
	}

	if ctx.IsSet(flags.WaitForReceiptFlag.Name) {
		cfg.waitForReceipt = true
	}

	cfg.MetricsEnabled = ctx.Bool(flags.MetricsEnabledFlag.Name)
	cfg.MetricsHTTP = ctx.String(flags.MetricsHTTPFlag.Name)
	cfg.MetricsPort = ctx.Int(flags.MetricsPortFlag.Name)

	return &cfg
}

// RegistryAddress returns the configured contract address.
func (c *Config) RegistryAddress() common.Address {
	return c.registryAddress
}

// APIUrl returns the caching API base URL, empty when not configured.
func (c *Config) APIUrl() string {
	return c.apiUrl
}

// EthHttpUrl returns the node endpoint.
func (c *Config) EthHttpUrl() string {
	return c.ethHttpUrl
}

// PageSize returns the configured batch read size.
func (c *Config) PageSize() int {
	return c.pageSize
}

// PollInterval returns the watcher poll interval, 0 when unset.
func (c *Config) PollInterval() time.Duration {
	return c.pollInterval
}
