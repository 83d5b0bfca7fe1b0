package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
)

// Auth wraps the transaction signer for registry mutations.
type Auth struct {
	client        Backend
	auth          *bind.TransactOpts
	address       common.Address
	fixedGasPrice bool
}

func NewAuth(cfg *Config, client Backend) (*Auth, error) {
	if cfg.privateKey == nil {
		return nil, errNoPrivateKey
	}
	if cfg.chainID == nil {
		return nil, errNoChainID
	}

	opts, err := bind.NewKeyedTransactorWithChainID(cfg.privateKey, cfg.chainID)
	if err != nil {
		return nil, err
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	fixedGasPrice := false

	// Use the configured gas price if it is set,
	// otherwise use gas estimation
	if cfg.gasPrice != nil {
		fixedGasPrice = true
		opts.GasPrice = cfg.gasPrice
	} else {
		gasPrice, err := client.SuggestGasPrice(opts.Context)
		if err != nil {
			return nil, err
		}
		opts.GasPrice = gasPrice
	}

	return &Auth{
		client:        client,
		auth:          opts,
		address:       crypto.PubkeyToAddress(cfg.privateKey.PublicKey),
		fixedGasPrice: fixedGasPrice,
	}, nil
}

// Address returns the signer address.
func (a *Auth) Address() common.Address {
	return a.address
}

// Opts returns transact options for the next submission, refreshing the
// suggested gas price unless a fixed one was configured.
func (a *Auth) Opts(ctx context.Context) *bind.TransactOpts {
	if !a.fixedGasPrice {
		gasPrice, err := a.client.SuggestGasPrice(ctx)
		if err != nil {
			log.Error("qciregistry/auth", "update gas price error", err.Error())
		} else {
			a.auth.GasPrice = gasPrice
		}
	}
	opts := *a.auth
	opts.Context = ctx
	return &opts
}
