// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/slotguard/dot/config"
	"github.com/urfave/cli"
)

var configCommand = cli.Command{
	Name:  "config",
	Usage: "Configuration file management",
	Subcommands: []cli.Command{
		{
			Name:   "export",
			Usage:  "Exports the configuration to a TOML file",
			Flags:  []cli.Flag{OutFlag},
			Action: configExportAction,
			Description: "The export command writes the configuration resulting from\n" +
				"the configuration file and global flags to a TOML file.\n" +
				"\tUsage: slotguard --backend chaindb config export --out ./config.toml",
		},
	},
}

func configExportAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := ctx.String(OutFlag.Name)
	err = config.Export(cfg, out)
	if err != nil {
		return err
	}

	logger.Info("exported configuration", "path", out)
	return nil
}
