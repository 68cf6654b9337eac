package app

import (
	"log/slog"

	"digitex_go/internal/infra"
	"digitex_go/internal/infra/storage"
	"digitex_go/internal/refdata"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config   *infra.Config
	Registry *refdata.Registry
	Journal  *storage.Journal
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization (config, logging, reference
// data, journal).
func (b *Bootstrap) Initialize() error {
	// 1. Load Config
	cfg, err := infra.LoadConfig("configs/config.yaml")
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Reference data: built-in venue table unless an override file is set.
	if cfg.RefData.TablePath != "" {
		b.Registry, err = refdata.Load(cfg.RefData.TablePath)
	} else {
		b.Registry, err = refdata.Default()
	}
	if err != nil {
		return err
	}
	slog.Info("reference data loaded", slog.Int("markets", len(b.Registry.Markets())))

	// 4. Diagnostic journal (optional)
	if cfg.Journal.Enabled {
		journal, err := storage.NewJournal(cfg.Journal.Path)
		if err != nil {
			return err
		}
		b.Journal = journal
		slog.Info("journal initialized", slog.String("path", cfg.Journal.Path))
	}

	return nil
}
