// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"io"

	"github.com/ChainSafe/slotguard/dot/types"
	"github.com/ChainSafe/slotguard/lib/common"
	"github.com/fatih/color"
	"github.com/urfave/cli"
)

var checkCommand = cli.Command{
	Name:  "check",
	Usage: "Checks a header for equivocation and records it",
	Flags: []cli.Flag{
		SlotNowFlag,
		SlotFlag,
		HeaderFlag,
		SignerFlag,
	},
	Action: checkAction,
	Description: "The check command checks if the signer already produced a different header\n" +
		"for the slot. It prints the equivocation proof and exits with code 2 if so,\n" +
		"otherwise it records the header.\n" +
		"\tUsage: slotguard check --slot-now 10 --slot 9 --header 0x... --signer 0x...",
}

func checkAction(ctx *cli.Context) error {
	header, err := parseHeader(ctx.String(HeaderFlag.Name))
	if err != nil {
		return err
	}

	signer, err := types.AuthorityIDFromHex(ctx.String(SignerFlag.Name))
	if err != nil {
		return fmt.Errorf("parsing signer: %w", err)
	}

	s, err := newSession(ctx, nil)
	if err != nil {
		return err
	}
	defer s.close()

	detected, err := check(ctx.App.Writer, s.slotState, ctx.Uint64(SlotNowFlag.Name),
		ctx.Uint64(SlotFlag.Name), header, signer)
	if err != nil {
		return err
	}

	if detected {
		return cli.NewExitError("equivocation detected", exitCodeEquivocation)
	}
	return nil
}

// check checks the header and prints the equivocation proof if any,
// or "clean" otherwise. It returns true if an equivocation was detected.
func check(w io.Writer, slotState *slotState, slotNow, slot uint64,
	header types.Header, signer types.AuthorityID) (detected bool, err error) {
	proof, err := slotState.CheckEquivocation(slotNow, slot, header, signer)
	if err != nil {
		return false, fmt.Errorf("checking equivocation: %w", err)
	}

	if proof == nil {
		_, err = color.New(color.FgGreen).Fprintln(w, "clean")
		return false, err
	}

	return true, printJSON(w, color.New(color.FgRed), proof)
}

func parseHeader(encodedHex string) (header types.Header, err error) {
	encoded, err := common.HexToBytes(encodedHex)
	if err != nil {
		return header, fmt.Errorf("parsing header hex: %w", err)
	}

	return types.DecodeHeader(encoded)
}
