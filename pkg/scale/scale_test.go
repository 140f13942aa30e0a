// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A [2]byte
	B uint64
}

func Test_Marshal(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value   interface{}
		encoded []byte
	}{
		"uint64": {
			value:   uint64(2002),
			encoded: []byte{0xd2, 0x07, 0, 0, 0, 0, 0, 0},
		},
		"empty slice": {
			value:   []pair{},
			encoded: []byte{0},
		},
		"slice of structs": {
			value: []pair{{A: [2]byte{1, 2}, B: 3}},
			encoded: []byte{
				4,    // compact length 1
				1, 2, // A
				3, 0, 0, 0, 0, 0, 0, 0, // B
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := Marshal(testCase.value)
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)
		})
	}
}

func Test_Unmarshal(t *testing.T) {
	t.Parallel()

	t.Run("slice of structs", func(t *testing.T) {
		t.Parallel()

		var pairs []pair
		err := Unmarshal([]byte{4, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0}, &pairs)
		require.NoError(t, err)
		assert.Equal(t, []pair{{A: [2]byte{1, 2}, B: 3}}, pairs)
	})

	t.Run("truncated uint64", func(t *testing.T) {
		t.Parallel()

		var value uint64
		err := Unmarshal([]byte{1, 2, 3}, &value)
		assert.Error(t, err)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		t.Parallel()

		var value uint64
		err := Unmarshal([]byte{1, 0, 0, 0, 0, 0, 0, 0, 9}, &value)
		assert.ErrorIs(t, err, ErrTrailingBytes)
		assert.EqualError(t, err, "trailing bytes after decoding: 1 bytes left decoding *uint64")
	})
}
