package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/ticklist/internal/cli"
	"github.com/alexanderramin/ticklist/internal/config"
	"github.com/alexanderramin/ticklist/internal/db"
	"github.com/alexanderramin/ticklist/internal/domain"
	"github.com/alexanderramin/ticklist/internal/persist"
	"github.com/alexanderramin/ticklist/internal/repository"
	"github.com/alexanderramin/ticklist/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeStore := func() error { return nil }
	defer func() { _ = closeStore() }()

	app := &cli.App{}

	// Detect interactive terminal for the TUI and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Storage is opened only after flags are parsed, so --backend and
	// --data take effect.
	app.Bootstrap = func(cmd *cobra.Command) (service.ItemService, error) {
		cfg, err := config.LoadFromFlags(cmd.Flags())
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger, err := cfg.Log.NewLogger(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("configuring logging: %w", err)
		}
		slog.SetDefault(logger)

		svc, closer, err := wire(cmd.Context(), cfg, logger)
		if err != nil {
			return nil, err
		}
		closeStore = closer
		return svc, nil
	}

	return cli.NewRootCmd(app).Execute()
}

// wire opens the configured storage and builds the item service on top of
// it. The returned func releases the storage.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ItemService, func() error, error) {
	slots, closer, err := openSlots(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	// Bridge and service share one generator so re-minted ids on load and
	// new ids never collide.
	ids := newIDGenerator(cfg.IDs.Strategy)
	bridge := persist.NewBridge(slots, cfg.Storage.Slot, ids, logger)

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	logger.Debug("storage ready",
		"backend", cfg.Storage.Backend,
		"path", cfg.Storage.Path,
		"slot", bridge.Slot(),
		"ids", cfg.IDs.Strategy,
	)
	return service.NewItemService(ctx, bridge, ids, observers...), closer, nil
}

func openSlots(cfg config.StorageConfig) (repository.SlotRepo, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return repository.NewFileSlotRepo(cfg.Path), func() error { return nil }, nil
	default:
		database, err := db.OpenDB(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteSlotRepo(database), database.Close, nil
	}
}

func newIDGenerator(strategy string) domain.IDGenerator {
	if strategy == config.IDsSequence {
		return domain.NewSequenceGenerator(0)
	}
	return domain.UUIDGenerator{}
}
