// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/slotguard/lib/common"
	"github.com/ChainSafe/slotguard/pkg/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Header is a block header as seen by the slot equivocation tracker.
// Its SCALE encoding matches the substrate header encoding, with the
// block number compact encoded.
type Header struct {
	ParentHash     common.Hash            `json:"parentHash"`
	Number         gsrpctypes.BlockNumber `json:"number"`
	StateRoot      common.Hash            `json:"stateRoot"`
	ExtrinsicsRoot common.Hash            `json:"extrinsicsRoot"`
	Digest         gsrpctypes.Digest      `json:"digest"`
}

// NewHeader creates a new block header.
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint32, digest gsrpctypes.Digest) Header {
	return Header{
		ParentHash:     parentHash,
		Number:         gsrpctypes.BlockNumber(number),
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// Encode returns the SCALE encoding of a header
func (bh Header) Encode() ([]byte, error) {
	return scale.Marshal(bh)
}

// Hash returns the blake2b hash of the SCALE encoded header.
// It panics if the header cannot be encoded.
func (bh Header) Hash() common.Hash {
	enc, err := bh.Encode()
	if err != nil {
		panic(err)
	}

	return common.MustBlake2bHash(enc)
}

// String returns the formatted header as a string
func (bh Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%d items Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, len(bh.Digest), bh.Hash())
}

// DecodeHeader decodes a SCALE encoded header.
func DecodeHeader(data []byte) (header Header, err error) {
	err = scale.Unmarshal(data, &header)
	if err != nil {
		return header, fmt.Errorf("decoding header: %w", err)
	}
	return header, nil
}
