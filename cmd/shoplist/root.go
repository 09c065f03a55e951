package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/shopping-list/internal/app"
	"github.com/nhle/shopping-list/internal/logging"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/shop"
	"github.com/nhle/shopping-list/internal/store"
)

var (
	flags = struct {
		ConfigFile string
		DBPath     string
		LogLevel   string
		Ephemeral  bool
	}{}

	root = &cobra.Command{
		Use:          "shoplist",
		Short:        "Shoplist keeps per-store shopping lists in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			p := tea.NewProgram(app.New(env.State, env.Logger), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running terminal ui: %w", err)
			}
			return nil
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", model.DefaultConfigPath(), "configuration file")
	root.PersistentFlags().StringVar(&flags.DBPath, "db", "", "database file (overrides data.path)")
	root.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level (overrides log.level)")
	root.PersistentFlags().BoolVar(&flags.Ephemeral, "ephemeral", false, "keep lists in memory only")

	root.AddCommand(storesCmd, exportCmd, importCmd, resetCmd, keysCmd, configCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env bundles everything a command needs to read or change the lists.
type env struct {
	Config    *model.AppConfig
	State     *shop.State
	Logger    *zap.Logger
	Persister *store.SnapshotPersister
	Blobs     store.BlobStore

	// Schema is the applied migration version, 0 for in-memory storage.
	Schema int

	db *store.SQLiteStore
}

// Close flushes the logger and closes the database.
func (e *env) Close() {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			e.Logger.Warn("closing database", zap.Error(err))
		}
	}
	_ = e.Logger.Sync()
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig() (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(model.ExpandHome(flags.ConfigFile))
	if err != nil {
		return nil, err
	}
	if flags.DBPath != "" {
		cfg.Data.Path = model.ExpandHome(flags.DBPath)
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	return cfg, nil
}

// openEnv loads the configuration and opens the shopping state on top of
// the configured database.
func openEnv() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	e := &env{Config: cfg, Logger: logger}

	if flags.Ephemeral {
		logger.Info("using in-memory storage")
		e.Blobs = store.NewMemoryStore()
	} else {
		if cfg.Data.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Data.Path), 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}

		db, err := store.NewSQLiteStore(cfg.Data.Path)
		if err != nil {
			return nil, err
		}
		e.db = db
		e.Blobs = db

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if e.Schema, err = db.SchemaVersion(ctx); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("database opened",
			zap.String("path", cfg.Data.Path),
			zap.String("key", cfg.Data.Key),
			zap.Int("schema_version", e.Schema),
		)
	}

	e.Persister = store.NewSnapshotPersister(e.Blobs, cfg.Data.Key)
	e.State = shop.New(e.Persister, logger)
	return e, nil
}
