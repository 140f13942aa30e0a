// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package scale marshals and unmarshals values using the SCALE codec
// of the substrate RPC client, rejecting trailing bytes on decode.
package scale

import (
	"bytes"
	"errors"
	"fmt"

	gsrpcscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrTrailingBytes = errors.New("trailing bytes after decoding")
	ErrDecodePanic   = errors.New("decoder panicked")
)

// Marshal returns the SCALE encoding of v.
func Marshal(v interface{}) (b []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	err = gsrpcscale.NewEncoder(buffer).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return buffer.Bytes(), nil
}

// Unmarshal decodes the SCALE encoded data into dst, which must be a pointer.
// All of data must be consumed for the decoding to succeed.
func Unmarshal(data []byte, dst interface{}) (err error) {
	defer func() {
		// malformed length prefixes can make reflection panic
		// when allocating the destination slice.
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDecodePanic, r)
		}
	}()

	reader := bytes.NewReader(data)
	err = gsrpcscale.NewDecoder(reader).Decode(dst)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", dst, err)
	}

	if reader.Len() > 0 {
		return fmt.Errorf("%w: %d bytes left decoding %T", ErrTrailingBytes, reader.Len(), dst)
	}

	return nil
}
