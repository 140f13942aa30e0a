// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/slotguard/dot/state"
	"github.com/ChainSafe/slotguard/dot/types"
	"github.com/ChainSafe/slotguard/internal/metrics"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

var replayCommand = cli.Command{
	Name:  "replay",
	Usage: "Checks all the headers of a JSON lines file",
	Flags: []cli.Flag{
		FileFlag,
		MetricsFlag,
	},
	Action: replayAction,
	Description: "The replay command checks each header of a JSON lines file in order.\n" +
		"Each line is an object with the fields slotNow, slot, header and signer,\n" +
		"header being the 0x prefixed hex of the SCALE encoded header.\n" +
		"It exits with code 2 if at least one equivocation is detected.\n" +
		"\tUsage: slotguard replay --file ./headers.jsonl",
}

type replayRecord struct {
	SlotNow uint64            `json:"slotNow"`
	Slot    uint64            `json:"slot"`
	Header  string            `json:"header"`
	Signer  types.AuthorityID `json:"signer"`
}

type replaySummary struct {
	Checked       uint
	Equivocations uint
}

func replayAction(ctx *cli.Context) (err error) {
	file, err := os.Open(filepath.Clean(ctx.String(FileFlag.Name)))
	if err != nil {
		return fmt.Errorf("opening replay file: %w", err)
	}
	defer file.Close()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var slotMetrics state.Metrics = metrics.Noop{}
	if ctx.Bool(MetricsFlag.Name) || cfg.Metrics.Enabled {
		slotMetrics, err = metrics.NewPrometheus(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("creating metrics: %w", err)
		}

		server := metrics.NewServer(cfg.Metrics.Address, prometheus.DefaultGatherer)
		err = server.Start()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			stopErr := server.Stop()
			if stopErr != nil {
				logger.Warn("failed to stop metrics server", "err", stopErr)
			}
		}()
	}

	s, err := newSession(ctx, slotMetrics)
	if err != nil {
		return err
	}
	defer s.close()

	summary, err := replay(file, ctx.App.Writer, s.slotState)
	if err != nil {
		return err
	}

	logger.Debug("replay done", "file", ctx.String(FileFlag.Name))
	_, err = fmt.Fprintf(ctx.App.Writer, "checked %d headers, %d equivocations detected\n",
		summary.Checked, summary.Equivocations)
	if err != nil {
		return err
	}

	if summary.Equivocations > 0 {
		return cli.NewExitError(fmt.Sprintf("%d equivocations detected", summary.Equivocations),
			exitCodeEquivocation)
	}
	return nil
}

// replay checks the records read from r in order, printing the
// equivocation proofs found to w.
func replay(r io.Reader, w io.Writer, slotState *slotState) (summary replaySummary, err error) {
	const maxLineSize = 1 << 20
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record replayRecord
		err = json.Unmarshal(line, &record)
		if err != nil {
			return summary, fmt.Errorf("decoding line %d: %w", lineNumber, err)
		}

		header, err := parseHeader(record.Header)
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		proof, err := slotState.CheckEquivocation(record.SlotNow, record.Slot, header, record.Signer)
		if err != nil {
			return summary, fmt.Errorf("checking line %d: %w", lineNumber, err)
		}
		summary.Checked++

		if proof == nil {
			continue
		}

		summary.Equivocations++
		err = printJSON(w, color.New(color.FgRed), proof)
		if err != nil {
			return summary, err
		}
	}

	err = scanner.Err()
	if err != nil {
		return summary, fmt.Errorf("reading line %d: %w", lineNumber+1, err)
	}

	return summary, nil
}
