// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "github.com/urfave/cli"

// Global flags
var (
	// ConfigFlag is the toml configuration file to load
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BasePathFlag overrides the data directory of the configuration
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the slots database",
	}
	// BackendFlag overrides the database backend of the configuration
	BackendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "Database backend. Supports badger, chaindb and memory",
	}
	// LogFlag overrides the log level of the configuration
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), error (eror), warn, info, debug (dbug) and trace (trce)",
	}
)

// Command flags
var (
	SlotNowFlag = cli.Uint64Flag{
		Name:     "slot-now",
		Usage:    "Current slot",
		Required: true,
	}
	SlotFlag = cli.Uint64Flag{
		Name:     "slot",
		Usage:    "Slot of the header",
		Required: true,
	}
	HeaderFlag = cli.StringFlag{
		Name:     "header",
		Usage:    "0x prefixed hex of the SCALE encoded header",
		Required: true,
	}
	SignerFlag = cli.StringFlag{
		Name:     "signer",
		Usage:    "0x prefixed hex of the sr25519 public key of the header author",
		Required: true,
	}
	FileFlag = cli.StringFlag{
		Name:     "file",
		Usage:    "JSON lines file of headers to replay",
		Required: true,
	}
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Serve prometheus metrics while replaying",
	}
	OutFlag = cli.StringFlag{
		Name:     "out",
		Usage:    "Path of the exported TOML configuration file",
		Required: true,
	}
)
