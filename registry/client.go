package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	"github.com/qcidev/qci-registry/bindings"
	ometrics "github.com/qcidev/qci-registry/metrics"
	"github.com/qcidev/qci-registry/retry"
)

var (
	// errNoChainID represents the error when the chain id is not provided
	// and it cannot be remotely fetched
	errNoChainID = errors.New("no chain id provided")
	// errNoPrivateKey represents the error when the private key is not
	// provided to the application
	errNoPrivateKey = errors.New("no private key provided")
	// errWrongChainID represents the error when the configured chain id is
	// not correct
	errWrongChainID = errors.New("wrong chain id provided")
	// errInvalidSigningKey represents the error when the signing key is
	// neither the owner nor a registered editor of the registry
	errInvalidSigningKey = errors.New("invalid signing key")

	// ErrDuplicateContent is returned by Create when the content hash is
	// already registered.
	ErrDuplicateContent = errors.New("content hash already registered")
	// ErrTxReverted is returned when a submission was mined but reverted.
	ErrTxReverted = errors.New("transaction reverted")
	// ErrBackwardTransition is returned by SetStatus for transitions out of
	// the terminal status. The contract is authoritative; this only catches
	// the one transition that is always invalid.
	ErrBackwardTransition = errors.New("cannot move a posted record back")
)

const receiptRetries = 30

// Backend is the subset of ethclient.Client the mutation client relies on.
type Backend interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client submits registry mutations. Reads go through Reader.
type Client struct {
	cfg      *Config
	chainID  *big.Int
	backend  Backend
	contract *bindings.QCIRegistry
	auth     *Auth
}

// Dial connects to the configured node, binds the registry contract and
// validates the signer. The chain ID reported by the node is cross-checked
// against the configured one when set.
func Dial(ctx context.Context, cfg *Config) (*Client, error) {
	log.Info("Connecting to registry chain", "url", cfg.ethHttpUrl)
	backend, err := DialEthClientWithTimeout(ctx, DefaultDialTimeout, cfg.ethHttpUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.ethHttpUrl, err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}
	if cfg.chainID != nil {
		if cfg.chainID.Cmp(chainID) != 0 {
			return nil, fmt.Errorf("%w: configured with %d and got %d",
				errWrongChainID, cfg.chainID, chainID)
		}
	} else {
		cfg.chainID = chainID
	}

	contract, err := bindings.NewQCIRegistry(cfg.registryAddress, backend)
	if err != nil {
		return nil, err
	}

	auth, err := NewAuth(cfg, backend)
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:      cfg,
		chainID:  chainID,
		backend:  backend,
		contract: contract,
		auth:     auth,
	}
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	log.Info("Connected to QCI registry", "address", cfg.registryAddress.Hex(),
		"chain-id", chainID, "signer", auth.Address().Hex())
	return c, nil
}

// ensure makes sure that the configured private key is the owner or a
// registered editor of the registry. Anything else cannot mutate records.
func (c *Client) ensure(ctx context.Context) error {
	opts := &bind.CallOpts{Context: ctx}
	owner, err := c.contract.Owner(opts)
	if err != nil {
		return err
	}
	if owner == c.auth.Address() {
		return nil
	}
	editor, err := c.contract.Editors(opts, c.auth.Address())
	if err != nil {
		return err
	}
	if !editor {
		log.Error("Signing key is neither owner nor editor",
			"signer", c.auth.Address().Hex(), "owner", owner.Hex())
		return errInvalidSigningKey
	}
	return nil
}

// Contract exposes the raw binding for callers that need it.
func (c *Client) Contract() *bindings.QCIRegistry {
	return c.contract
}

// Backend exposes the underlying eth client.
func (c *Client) Backend() Backend {
	return c.backend
}

// Create submits a new record. When wait-for-receipt is configured the
// assigned QCI number is extracted from the QCICreated log; otherwise the
// returned number is nil and the caller picks it up from the receipt later.
func (c *Client) Create(ctx context.Context, draft Draft) (*types.Transaction, *big.Int, error) {
	exists, err := c.contract.ContentHashExists(&bind.CallOpts{Context: ctx}, draft.ContentHash)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check content hash: %w", err)
	}
	if exists {
		return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateContent, draft.ContentHash.Hex())
	}

	tx, err := c.contract.CreateQCI(c.auth.Opts(ctx), draft.Title, draft.ChainName, draft.ContentHash, draft.IPFSUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to submit createQCI: %w", err)
	}
	ometrics.RegistryStats.TxSubmittedCounter.Inc(1)
	log.Info("createQCI transaction sent", "tx_hash", tx.Hash().Hex(), "title", draft.Title)

	if !c.cfg.waitForReceipt {
		return tx, nil, nil
	}
	receipt, err := c.waitForReceipt(ctx, tx)
	if err != nil {
		return tx, nil, err
	}
	number, err := c.createdNumber(receipt)
	if err != nil {
		return tx, nil, err
	}
	log.Info("createQCI transaction confirmed", "tx_hash", tx.Hash().Hex(),
		"block_number", receipt.BlockNumber, "qci_number", number)
	return tx, number, nil
}

// Update submits a content update for an existing record, bumping its
// version on-chain.
func (c *Client) Update(ctx context.Context, number *big.Int, draft Draft, changeNote string) (*types.Transaction, error) {
	tx, err := c.contract.UpdateQCI(c.auth.Opts(ctx), number, draft.Title, draft.ContentHash, draft.IPFSUrl, changeNote)
	if err != nil {
		return nil, fmt.Errorf("failed to submit updateQCI: %w", err)
	}
	ometrics.RegistryStats.TxSubmittedCounter.Inc(1)
	log.Info("updateQCI transaction sent", "tx_hash", tx.Hash().Hex(), "qci_number", number)
	return tx, c.maybeWait(ctx, tx)
}

// SetStatus moves a record to the given status. Moving a posted record
// backwards is rejected client-side before spending gas; every other
// transition is left to the contract.
func (c *Client) SetStatus(ctx context.Context, number *big.Int, status Status) (*types.Transaction, error) {
	if !status.Valid() {
		return nil, &ErrUnknownStatus{Value: status}
	}
	current, err := c.contract.Qcis(&bind.CallOpts{Context: ctx}, number)
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", number, err)
	}
	if ParseStatusOrDraft(current.Status) == StatusPostedToSnapshot && status != StatusPostedToSnapshot {
		return nil, fmt.Errorf("%w: QCI-%s", ErrBackwardTransition, number)
	}

	tx, err := c.contract.SetStatus(c.auth.Opts(ctx), number, status.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to submit setStatus: %w", err)
	}
	ometrics.RegistryStats.TxSubmittedCounter.Inc(1)
	log.Info("setStatus transaction sent", "tx_hash", tx.Hash().Hex(),
		"qci_number", number, "status", status.String())
	return tx, c.maybeWait(ctx, tx)
}

// LinkSnapshot attaches a Snapshot proposal id to a record. The contract
// moves the record to Posted to Snapshot as part of the call.
func (c *Client) LinkSnapshot(ctx context.Context, number *big.Int, proposalID string) (*types.Transaction, error) {
	tx, err := c.contract.LinkSnapshotProposal(c.auth.Opts(ctx), number, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to submit linkSnapshotProposal: %w", err)
	}
	ometrics.RegistryStats.TxSubmittedCounter.Inc(1)
	log.Info("linkSnapshotProposal transaction sent", "tx_hash", tx.Hash().Hex(),
		"qci_number", number, "proposal", proposalID)
	return tx, c.maybeWait(ctx, tx)
}

// SetImplementation records who implemented a proposal and when.
func (c *Client) SetImplementation(ctx context.Context, number *big.Int, implementor string, date time.Time) (*types.Transaction, error) {
	tx, err := c.contract.SetImplementation(c.auth.Opts(ctx), number, implementor, big.NewInt(date.Unix()))
	if err != nil {
		return nil, fmt.Errorf("failed to submit setImplementation: %w", err)
	}
	ometrics.RegistryStats.TxSubmittedCounter.Inc(1)
	log.Info("setImplementation transaction sent", "tx_hash", tx.Hash().Hex(),
		"qci_number", number, "implementor", implementor)
	return tx, c.maybeWait(ctx, tx)
}

func (c *Client) maybeWait(ctx context.Context, tx *types.Transaction) error {
	if !c.cfg.waitForReceipt {
		return nil
	}
	receipt, err := c.waitForReceipt(ctx, tx)
	if err != nil {
		return err
	}
	log.Info("transaction confirmed", "tx_hash", tx.Hash().Hex(), "block_number", receipt.BlockNumber)
	return nil
}

// waitForReceipt polls the backend until the transaction is mined, with
// bounded retries. A mined but reverted transaction is an error.
func (c *Client) waitForReceipt(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := retry.Do(ctx, receiptRetries, retry.Fixed(300*time.Millisecond), func() (*types.Receipt, error) {
		return c.backend.TransactionReceipt(ctx, tx.Hash())
	})
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("transaction receipt not found after %d retries: %s", receiptRetries, tx.Hash().Hex())
		}
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ometrics.RegistryStats.TxRevertedCounter.Inc(1)
		return nil, fmt.Errorf("%w: %s", ErrTxReverted, tx.Hash().Hex())
	}
	ometrics.RegistryStats.TxConfirmedCounter.Inc(1)
	return receipt, nil
}

// createdNumber pulls the assigned QCI number out of the QCICreated log.
func (c *Client) createdNumber(receipt *types.Receipt) (*big.Int, error) {
	for _, l := range receipt.Logs {
		created, err := c.contract.ParseQCICreated(*l)
		if err != nil {
			continue
		}
		return created.QciNumber, nil
	}
	return nil, fmt.Errorf("no QCICreated event in receipt %s", receipt.TxHash.Hex())
}
