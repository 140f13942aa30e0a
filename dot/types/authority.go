// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/slotguard/lib/common"
)

var (
	ErrInvalidAuthorityLength = errors.New("invalid authority id length")
	ErrInvalidPublicKey       = errors.New("invalid sr25519 public key")
)

// AuthorityID is a BABE authority identifier. Necessarily equivalent to the
// schnorrkel public key used in the main BABE module.
type AuthorityID [32]byte

// NewAuthorityIDFromPublicKey returns the authority id of a schnorrkel public key.
func NewAuthorityIDFromPublicKey(pk *schnorrkel.PublicKey) AuthorityID {
	return AuthorityID(pk.Encode())
}

// AuthorityIDFromHex parses a 0x prefixed hex string into an authority id,
// checking it is a valid sr25519 public key.
func AuthorityIDFromHex(in string) (id AuthorityID, err error) {
	b, err := common.HexToBytes(in)
	if err != nil {
		return id, err
	}

	if len(b) != len(id) {
		return id, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidAuthorityLength, len(id), len(b))
	}
	copy(id[:], b)

	_, err = id.PublicKey()
	if err != nil {
		return AuthorityID{}, err
	}

	return id, nil
}

// PublicKey decodes the authority id as a schnorrkel public key.
func (a AuthorityID) PublicKey() (*schnorrkel.PublicKey, error) {
	pk := &schnorrkel.PublicKey{}
	err := pk.Decode(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}
	return pk, nil
}

// String returns the 0x prefixed hex encoding of the authority id
func (a AuthorityID) String() string {
	return common.BytesToHex(a[:])
}

// MarshalJSON encodes the authority id as a hex string
func (a AuthorityID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a hex string into the authority id
func (a *AuthorityID) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	id, err := AuthorityIDFromHex(s)
	if err != nil {
		return err
	}

	*a = id
	return nil
}
