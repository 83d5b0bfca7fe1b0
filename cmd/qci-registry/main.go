package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	gethmetrics "github.com/ethereum/go-ethereum/metrics"
	"github.com/urfave/cli/v2"

	"github.com/qcidev/qci-registry/api"
	"github.com/qcidev/qci-registry/bindings"
	"github.com/qcidev/qci-registry/flags"
	"github.com/qcidev/qci-registry/metrics"
	"github.com/qcidev/qci-registry/registry"
)

var (
	GitCommit = ""
	GitDate   = ""
	Version   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = Version
	app.Name = "qci-registry"
	app.Usage = "QCI registry client"
	app.Description = "Create, update and track QCI proposal records on-chain"
	app.Flags = flags.Flags
	app.Commands = []*cli.Command{
		createCmd(),
		updateCmd(),
		setStatusCmd(),
		linkSnapshotCmd(),
		implementCmd(),
		getCmd(),
		listCmd(),
		watchCmd(),
	}
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

// setup builds the shared config, wires logging and starts the metrics
// server when enabled.
func setup(cliCtx *cli.Context) *registry.Config {
	lvl := log.FromLegacyLevel(cliCtx.Int(flags.LogLevelFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stdout, lvl, true)))

	cfg := registry.NewConfig(cliCtx)

	mreg := gethmetrics.NewRegistry()
	metrics.InitAndRegisterStats(mreg)
	if cfg.MetricsEnabled {
		go func() {
			if err := metrics.Serve(mreg, cfg.MetricsHTTP, cfg.MetricsPort); err != nil {
				log.Error("Metrics server failed", "err", err)
			}
		}()
	}
	return cfg
}

// interruptContext is cancelled on SIGINT/SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()
	return ctx, cancel
}

func createCmd() *cli.Command {
	var (
		titleFlag   = &cli.StringFlag{Name: "title", Usage: "proposal title", Required: true}
		chainFlag   = &cli.StringFlag{Name: "chain", Usage: "target chain name", Required: true}
		contentFlag = &cli.PathFlag{Name: "content", Usage: "proposal markdown file, hashed with keccak256"}
		hashFlag    = &cli.StringFlag{Name: "content-hash", Usage: "precomputed keccak256 of the proposal body"}
		ipfsFlag    = &cli.StringFlag{Name: "ipfs-url", Usage: "location of the proposal body", Required: true}
	)
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new QCI record",
		Flags: []cli.Flag{titleFlag, chainFlag, contentFlag, hashFlag, ipfsFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			contentHash, err := resolveContentHash(cliCtx, contentFlag.Name, hashFlag.Name)
			if err != nil {
				return err
			}
			client, err := registry.Dial(ctx, cfg)
			if err != nil {
				return err
			}
			tx, number, err := client.Create(ctx, registry.Draft{
				Title:       cliCtx.String(titleFlag.Name),
				ChainName:   cliCtx.String(chainFlag.Name),
				ContentHash: contentHash,
				IPFSUrl:     cliCtx.String(ipfsFlag.Name),
			})
			if err != nil {
				return err
			}
			if number != nil {
				fmt.Fprintf(cliCtx.App.Writer, "created QCI-%s in %s\n", number, tx.Hash().Hex())
			} else {
				fmt.Fprintf(cliCtx.App.Writer, "submitted %s\n", tx.Hash().Hex())
			}
			return nil
		},
	}
}

func updateCmd() *cli.Command {
	var (
		numberFlag  = &cli.Uint64Flag{Name: "number", Usage: "QCI number to update", Required: true}
		titleFlag   = &cli.StringFlag{Name: "title", Usage: "proposal title", Required: true}
		contentFlag = &cli.PathFlag{Name: "content", Usage: "updated markdown file, hashed with keccak256"}
		hashFlag    = &cli.StringFlag{Name: "content-hash", Usage: "precomputed keccak256 of the updated body"}
		ipfsFlag    = &cli.StringFlag{Name: "ipfs-url", Usage: "location of the updated body", Required: true}
		noteFlag    = &cli.StringFlag{Name: "change-note", Usage: "what changed in this revision"}
	)
	return &cli.Command{
		Name:  "update",
		Usage: "Update the content of an existing record",
		Flags: []cli.Flag{numberFlag, titleFlag, contentFlag, hashFlag, ipfsFlag, noteFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			contentHash, err := resolveContentHash(cliCtx, contentFlag.Name, hashFlag.Name)
			if err != nil {
				return err
			}
			client, err := registry.Dial(ctx, cfg)
			if err != nil {
				return err
			}
			number := new(big.Int).SetUint64(cliCtx.Uint64(numberFlag.Name))
			tx, err := client.Update(ctx, number, registry.Draft{
				Title:       cliCtx.String(titleFlag.Name),
				ContentHash: contentHash,
				IPFSUrl:     cliCtx.String(ipfsFlag.Name),
			}, cliCtx.String(noteFlag.Name))
			if err != nil {
				return err
			}
			fmt.Fprintf(cliCtx.App.Writer, "submitted %s\n", tx.Hash().Hex())
			return nil
		},
	}
}

func setStatusCmd() *cli.Command {
	var (
		numberFlag = &cli.Uint64Flag{Name: "number", Usage: "QCI number", Required: true}
		statusFlag = &cli.StringFlag{Name: "status", Usage: "target status name", Required: true}
	)
	return &cli.Command{
		Name:  "set-status",
		Usage: "Move a record to another status",
		Flags: []cli.Flag{numberFlag, statusFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			status, err := registry.ParseStatus(cliCtx.String(statusFlag.Name))
			if err != nil {
				return err
			}
			client, err := registry.Dial(ctx, cfg)
			if err != nil {
				return err
			}
			number := new(big.Int).SetUint64(cliCtx.Uint64(numberFlag.Name))
			tx, err := client.SetStatus(ctx, number, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cliCtx.App.Writer, "submitted %s\n", tx.Hash().Hex())
			return nil
		},
	}
}

func linkSnapshotCmd() *cli.Command {
	var (
		numberFlag   = &cli.Uint64Flag{Name: "number", Usage: "QCI number", Required: true}
		proposalFlag = &cli.StringFlag{Name: "proposal-id", Usage: "Snapshot proposal id", Required: true}
	)
	return &cli.Command{
		Name:  "link-snapshot",
		Usage: "Attach a Snapshot proposal to a record",
		Flags: []cli.Flag{numberFlag, proposalFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			client, err := registry.Dial(ctx, cfg)
			if err != nil {
				return err
			}
			number := new(big.Int).SetUint64(cliCtx.Uint64(numberFlag.Name))
			tx, err := client.LinkSnapshot(ctx, number, cliCtx.String(proposalFlag.Name))
			if err != nil {
				return err
			}
			fmt.Fprintf(cliCtx.App.Writer, "submitted %s\n", tx.Hash().Hex())
			return nil
		},
	}
}

func implementCmd() *cli.Command {
	var (
		numberFlag      = &cli.Uint64Flag{Name: "number", Usage: "QCI number", Required: true}
		implementorFlag = &cli.StringFlag{Name: "implementor", Usage: "who implemented the proposal", Required: true}
		dateFlag        = &cli.TimestampFlag{Name: "date", Usage: "implementation date (RFC3339), defaults to now", Layout: time.RFC3339}
	)
	return &cli.Command{
		Name:  "implement",
		Usage: "Record the implementation of a proposal",
		Flags: []cli.Flag{numberFlag, implementorFlag, dateFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			date := time.Now()
			if ts := cliCtx.Timestamp(dateFlag.Name); ts != nil {
				date = *ts
			}
			client, err := registry.Dial(ctx, cfg)
			if err != nil {
				return err
			}
			number := new(big.Int).SetUint64(cliCtx.Uint64(numberFlag.Name))
			tx, err := client.SetImplementation(ctx, number, cliCtx.String(implementorFlag.Name), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cliCtx.App.Writer, "submitted %s\n", tx.Hash().Hex())
			return nil
		},
	}
}

func getCmd() *cli.Command {
	var (
		numberFlag = &cli.Uint64Flag{Name: "number", Usage: "QCI number", Required: true}
		sourceFlag = &cli.StringFlag{Name: "source", Value: "chain", Usage: "read from \"chain\" or \"api\""}
	)
	return &cli.Command{
		Name:  "get",
		Usage: "Fetch one record and print it as JSON",
		Flags: []cli.Flag{numberFlag, sourceFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			number := cliCtx.Uint64(numberFlag.Name)
			q, err := fetchOne(ctx, cliCtx, cfg, number)
			if err != nil {
				return err
			}
			return printJSON(cliCtx, q)
		},
	}
}

func listCmd() *cli.Command {
	var (
		sourceFlag = &cli.StringFlag{Name: "source", Value: "chain", Usage: "read from \"chain\" or \"api\""}
		chainFlag  = &cli.StringFlag{Name: "chain", Usage: "filter by chain name (api source only)"}
		statusFlag = &cli.StringFlag{Name: "status", Usage: "filter by status name (api source only)"}
	)
	return &cli.Command{
		Name:  "list",
		Usage: "Fetch all records and print them as JSON",
		Flags: []cli.Flag{sourceFlag, chainFlag, statusFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			var (
				records []*registry.QCI
				err     error
			)
			switch source := cliCtx.String(sourceFlag.Name); source {
			case "api":
				client := api.NewClient(cfg.APIUrl())
				records, err = client.ListQCIs(ctx, api.ListOptions{
					ChainName: cliCtx.String(chainFlag.Name),
					Status:    cliCtx.String(statusFlag.Name),
				})
			case "chain":
				var reader *registry.Reader
				reader, err = dialReader(ctx, cfg)
				if err != nil {
					return err
				}
				records, err = reader.All(ctx)
			default:
				return fmt.Errorf("unknown source %q", source)
			}
			if err != nil {
				return err
			}
			return printJSON(cliCtx, records)
		},
	}
}

func watchCmd() *cli.Command {
	var fromFlag = &cli.Uint64Flag{Name: "from-block", Usage: "block to resume from, 0 starts at the head"}
	return &cli.Command{
		Name:  "watch",
		Usage: "Stream status transitions as they land on-chain",
		Flags: []cli.Flag{fromFlag},
		Action: func(cliCtx *cli.Context) error {
			cfg := setup(cliCtx)
			ctx, cancel := interruptContext()
			defer cancel()

			backend, err := registry.DialEthClientWithTimeout(ctx, registry.DefaultDialTimeout, cfg.EthHttpUrl())
			if err != nil {
				return err
			}
			filterer, err := bindings.NewQCIRegistryFilterer(cfg.RegistryAddress(), backend)
			if err != nil {
				return err
			}
			watcher := registry.NewWatcher(backend, filterer,
				cfg.PollInterval(), cliCtx.Uint64(fromFlag.Name))

			transitions := make(chan registry.StatusTransition, 16)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for tr := range transitions {
					line := statusTransitionOutput{
						Number: tr.Number.Uint64(),
						Old:    tr.Old.String(),
						New:    tr.New.String(),
						Block:  tr.BlockNumber,
						TxHash: tr.TxHash.Hex(),
					}
					if err := printJSON(cliCtx, line); err != nil {
						log.Error("Cannot write transition", "err", err)
					}
				}
			}()
			err = watcher.Watch(ctx, transitions)
			<-done
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

// statusTransitionOutput is the JSON line emitted by the watch command.
type statusTransitionOutput struct {
	Number uint64 `json:"qciNumber"`
	Old    string `json:"oldStatus"`
	New    string `json:"newStatus"`
	Block  uint64 `json:"block"`
	TxHash string `json:"txHash"`
}

func fetchOne(ctx context.Context, cliCtx *cli.Context, cfg *registry.Config, number uint64) (*registry.QCI, error) {
	if cliCtx.String("source") == "api" {
		return api.NewClient(cfg.APIUrl()).GetQCI(ctx, number)
	}
	reader, err := dialReader(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return reader.Get(ctx, number)
}

func dialReader(ctx context.Context, cfg *registry.Config) (*registry.Reader, error) {
	rpcClient, err := registry.DialRPCClientWithTimeout(ctx, registry.DefaultDialTimeout, cfg.EthHttpUrl())
	if err != nil {
		return nil, err
	}
	return registry.NewReader(rpcClient, cfg.RegistryAddress(), cfg.PageSize()), nil
}

// resolveContentHash takes the hash from --content-hash or computes it from
// the file behind --content. Exactly one of the two must be given.
func resolveContentHash(cliCtx *cli.Context, contentFlag, hashFlag string) (common.Hash, error) {
	hasContent := cliCtx.IsSet(contentFlag)
	hasHash := cliCtx.IsSet(hashFlag)
	if hasContent == hasHash {
		return common.Hash{}, fmt.Errorf("exactly one of --%s and --%s is required", contentFlag, hashFlag)
	}
	if hasHash {
		return common.HexToHash(cliCtx.String(hashFlag)), nil
	}
	body, err := os.ReadFile(cliCtx.Path(contentFlag))
	if err != nil {
		return common.Hash{}, fmt.Errorf("cannot read proposal body: %w", err)
	}
	return crypto.Keccak256Hash(body), nil
}

func printJSON(cliCtx *cli.Context, v any) error {
	enc := json.NewEncoder(cliCtx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
