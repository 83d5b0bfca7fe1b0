package flags

import (
	"github.com/urfave/cli/v2"
)

const envVarPrefix = "QCI_REGISTRY_"

func prefixEnvVars(name string) []string {
	return []string{envVarPrefix + name}
}

var (
	EthHttpUrlFlag = &cli.StringFlag{
		Name:    "eth-http-url",
		Value:   "http://127.0.0.1:8545",
		Usage:   "HTTP endpoint of the chain hosting the registry",
		EnvVars: prefixEnvVars("ETH_HTTP_URL"),
	}
	RegistryAddressFlag = &cli.StringFlag{
		Name:     "registry-address",
		Usage:    "Address of the QCIRegistry contract",
		EnvVars:  prefixEnvVars("REGISTRY_ADDRESS"),
		Required: true,
	}
	ChainIDFlag = &cli.Uint64Flag{
		Name:    "chain-id",
		Usage:   "Expected chain ID, cross-checked against the node",
		EnvVars: prefixEnvVars("CHAIN_ID"),
	}
	PrivateKeyFlag = &cli.StringFlag{
		Name:    "private-key",
		Usage:   "Private key used to sign registry transactions",
		EnvVars: prefixEnvVars("PRIVATE_KEY"),
	}
	TransactionGasPriceFlag = &cli.Uint64Flag{
		Name:    "transaction-gas-price",
		Usage:   "Hardcoded tx.gasPrice, not setting it uses gas estimation",
		EnvVars: prefixEnvVars("TRANSACTION_GAS_PRICE"),
	}
	WaitForReceiptFlag = &cli.BoolFlag{
		Name:    "wait-for-receipt",
		Usage:   "wait for receipts when sending transactions",
		EnvVars: prefixEnvVars("WAIT_FOR_RECEIPT"),
	}
	PageSizeFlag = &cli.IntFlag{
		Name:    "page-size",
		Value:   50,
		Usage:   "number of records fetched per batched read",
		EnvVars: prefixEnvVars("PAGE_SIZE"),
	}
	PollIntervalFlag = &cli.DurationFlag{
		Name:    "poll-interval",
		Usage:   "polling interval of the status watcher (0 uses the default)",
		EnvVars: prefixEnvVars("POLL_INTERVAL"),
	}
	APIUrlFlag = &cli.StringFlag{
		Name:    "api-url",
		Usage:   "Base URL of the caching registry API",
		EnvVars: prefixEnvVars("API_URL"),
	}
	LogLevelFlag = &cli.IntFlag{
		Name:    "loglevel",
		Value:   3,
		Usage:   "log level to emit to the screen",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
	}
	MetricsEnabledFlag = &cli.BoolFlag{
		Name:    "metrics",
		Usage:   "Enable metrics collection and reporting",
		EnvVars: prefixEnvVars("METRICS_ENABLE"),
	}
	MetricsHTTPFlag = &cli.StringFlag{
		Name:    "metrics.addr",
		Usage:   "Enable stand-alone metrics HTTP server listening interface",
		Value:   "127.0.0.1",
		EnvVars: prefixEnvVars("METRICS_HTTP"),
	}
	MetricsPortFlag = &cli.IntFlag{
		Name:    "metrics.port",
		Usage:   "Metrics HTTP server listening port",
		Value:   9107,
		EnvVars: prefixEnvVars("METRICS_PORT"),
	}
)

// Flags are the global flags shared by every subcommand.
var Flags = []cli.Flag{
	EthHttpUrlFlag,
	RegistryAddressFlag,
	ChainIDFlag,
	PrivateKeyFlag,
	TransactionGasPriceFlag,
	WaitForReceiptFlag,
	PageSizeFlag,
	PollIntervalFlag,
	APIUrlFlag,
	LogLevelFlag,
	MetricsEnabledFlag,
	MetricsHTTPFlag,
	MetricsPortFlag,
}
