// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common_test

import (
	"testing"

	"github.com/ChainSafe/slotguard/lib/common"

	"github.com/stretchr/testify/require"
)

func TestBlake2bHash_EmptyHash(t *testing.T) {
	// test case from https://github.com/noot/blake2b_test which uses the blake2-rfp rust crate
	// also see https://github.com/paritytech/substrate/blob/master/core/primitives/src/hashing.rs
	in := []byte{}
	h, err := common.Blake2bHash(in)
	require.NoError(t, err)

	expected, err := common.HexToHash("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestMustBlake2bHash(t *testing.T) {
	in := []byte("static")
	require.Equal(t, common.MustBlake2bHash(in), common.MustBlake2bHash(in))
	require.NotEqual(t, common.MustBlake2bHash(in), common.MustBlake2bHash([]byte("statik")))
}
