// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	log "github.com/ChainSafe/log15"
	"github.com/urfave/cli"
)

// exitCodeEquivocation is the process exit code when an equivocation is detected.
const exitCodeEquivocation = 2

var logger = log.New("pkg", "cmd")

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "slotguard"
	app.Usage = "detects slot equivocations of block authors"
	app.Flags = []cli.Flag{
		ConfigFlag,
		BasePathFlag,
		BackendFlag,
		LogFlag,
	}
	app.Commands = []cli.Command{
		checkCommand,
		inspectCommand,
		replayCommand,
		configCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error("failed to run slotguard", "err", err)
		os.Exit(1)
	}
}
