// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/slotguard/dot/config"
	"github.com/ChainSafe/slotguard/dot/state"
	"github.com/ChainSafe/slotguard/dot/types"
	"github.com/ChainSafe/slotguard/internal/database"
	"github.com/ChainSafe/slotguard/internal/database/badger"
	"github.com/ChainSafe/slotguard/internal/database/memory"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	log "github.com/ChainSafe/log15"
)

type slotState = state.SlotState[types.Header, types.AuthorityID]

type configOverrides struct {
	basePath string
	backend  string
	logLevel string
}

// loadConfig loads the configuration file given with --config, or the
// default configuration, and applies the global flag overrides.
func loadConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	cfg = config.Default()
	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	applyOverrides(cfg, configOverrides{
		basePath: ctx.GlobalString(BasePathFlag.Name),
		backend:  ctx.GlobalString(BackendFlag.Name),
		logLevel: ctx.GlobalString(LogFlag.Name),
	})

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config, overrides configOverrides) {
	if overrides.basePath != "" {
		cfg.Global.BasePath = overrides.basePath
	}
	if overrides.backend != "" {
		cfg.Database.Backend = overrides.backend
	}
	if overrides.logLevel != "" {
		cfg.Global.LogLvl = overrides.logLevel
	}
}

// setupLogger sets the root log handler to print to stderr at the given level.
func setupLogger(level string) error {
	lvl, err := log.LvlFromString(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	handler := log.StreamHandler(os.Stderr, log.TerminalFormat())
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))
	return nil
}

// openDatabase opens the slots database with the configured backend.
func openDatabase(cfg config.DatabaseConfig, basePath string) (db database.Database, err error) {
	switch cfg.Backend {
	case config.BackendBadger:
		settings := badger.Settings{InMemory: &cfg.InMemory}
		if !cfg.InMemory {
			settings.Path = filepath.Join(basePath, "slots")
		}
		return badger.New(settings)
	case config.BackendChainDB:
		return database.OpenChainDB(filepath.Join(basePath, "chaindb"), cfg.InMemory)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown database backend: %s", cfg.Backend)
	}
}

// session holds the slot state opened from the command line configuration.
type session struct {
	cfg       *config.Config
	db        database.Database
	slotState *slotState
}

func newSession(ctx *cli.Context, metrics state.Metrics) (s *session, err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	err = setupLogger(cfg.Global.LogLvl)
	if err != nil {
		return nil, err
	}

	db, err := openDatabase(cfg.Database, cfg.Global.BasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	logger.Debug("opened slots database",
		"backend", cfg.Database.Backend, "basepath", cfg.Global.BasePath)

	return &session{
		cfg:       cfg,
		db:        db,
		slotState: state.NewBabeSlotState(db, metrics),
	}, nil
}

func (s *session) close() {
	err := s.db.Close()
	if err != nil {
		logger.Warn("failed to close database", "err", err)
	}
}

// printJSON prints the value as indented JSON, in the given color.
func printJSON(w io.Writer, c *color.Color, value interface{}) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	_, err = c.Fprintln(w, string(encoded))
	return err
}
