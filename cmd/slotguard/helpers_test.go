// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"testing"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/slotguard/dot/state"
	"github.com/ChainSafe/slotguard/dot/types"
	"github.com/ChainSafe/slotguard/internal/database"
	"github.com/ChainSafe/slotguard/internal/database/memory"
	"github.com/ChainSafe/slotguard/lib/common"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/require"
)

func newTestSlotState(t *testing.T) *slotState {
	t.Helper()
	db := memory.New()
	t.Cleanup(func() {
		_ = db.Close()
	})
	return state.NewBabeSlotState(db, nil)
}

func newTestSlotStateFromDatabase(db database.Database) *slotState {
	return state.NewBabeSlotState(db, nil)
}

func newTestSigner(t *testing.T) types.AuthorityID {
	t.Helper()
	_, publicKey, err := schnorrkel.GenerateKeypair()
	require.NoError(t, err)
	return types.NewAuthorityIDFromPublicKey(publicKey)
}

func newTestHeader(number uint32) types.Header {
	return types.NewHeader(common.Hash{byte(number)}, common.Hash{1}, common.Hash{2},
		number, gsrpctypes.Digest{})
}

func encodeTestHeader(t *testing.T, header types.Header) string {
	t.Helper()
	encoded, err := header.Encode()
	require.NoError(t, err)
	return common.BytesToHex(encoded)
}
