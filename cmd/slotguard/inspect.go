// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"io"

	"github.com/ChainSafe/slotguard/dot/types"
	"github.com/fatih/color"
	"github.com/urfave/cli"
)

var inspectCommand = cli.Command{
	Name:  "inspect",
	Usage: "Prints the headers recorded for a slot",
	Flags: []cli.Flag{
		SlotFlag,
	},
	Action: inspectAction,
	Description: "The inspect command prints the headers and signers recorded for a slot,\n" +
		"together with the oldest slot which can still be in the database.\n" +
		"\tUsage: slotguard inspect --slot 9",
}

type inspectEntry struct {
	Hash   string            `json:"hash"`
	Header types.Header      `json:"header"`
	Signer types.AuthorityID `json:"signer"`
}

type inspectOutput struct {
	Slot           uint64         `json:"slot"`
	FirstSavedSlot *uint64        `json:"firstSavedSlot"`
	Entries        []inspectEntry `json:"entries"`
}

func inspectAction(ctx *cli.Context) error {
	s, err := newSession(ctx, nil)
	if err != nil {
		return err
	}
	defer s.close()

	return inspect(ctx.App.Writer, s.slotState, ctx.Uint64(SlotFlag.Name))
}

func inspect(w io.Writer, slotState *slotState, slot uint64) error {
	entries, err := slotState.SlotEntries(slot)
	if err != nil {
		return fmt.Errorf("getting entries of slot %d: %w", slot, err)
	}

	firstSavedSlot, found, err := slotState.FirstSavedSlot()
	if err != nil {
		return fmt.Errorf("getting first saved slot: %w", err)
	}

	output := inspectOutput{
		Slot:    slot,
		Entries: make([]inspectEntry, len(entries)),
	}
	if found {
		output.FirstSavedSlot = &firstSavedSlot
	}
	for i, entry := range entries {
		output.Entries[i] = inspectEntry{
			Hash:   entry.Header.Hash().String(),
			Header: entry.Header,
			Signer: entry.Signer,
		}
	}

	return printJSON(w, color.New(color.FgCyan), output)
}
