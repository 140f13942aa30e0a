// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPrefix    = errors.New("could not byteify non 0x prefixed string")
	ErrHashTooLong = errors.New("hex string too long for hash")
)

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, ErrNoPrefix
	}

	in = in[2:]
	// odd length strings are left padded with a zero nibble
	if len(in)%2 != 0 {
		in = "0" + in
	}

	out, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("decoding hex string: %w", err)
	}
	return out, nil
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}
