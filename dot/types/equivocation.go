// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// EquivocationProof represents an equivocation proof. An equivocation happens
// when a validator produces more than one block on the same slot. The proof of
// equivocation are the given distinct headers that were signed by the validator
// and which include the slot number.
type EquivocationProof[H, P any] struct {
	// The public key of the equivocator.
	Offender P `json:"offender"`
	// The slot at which the equivocation happened.
	Slot uint64 `json:"slot"`
	// The first header involved in the equivocation.
	FirstHeader H `json:"firstHeader"`
	// The second header involved in the equivocation.
	SecondHeader H `json:"secondHeader"`
}

// BabeEquivocationProof is the equivocation proof for BABE headers
// signed by sr25519 authorities.
type BabeEquivocationProof = EquivocationProof[Header, AuthorityID]
