// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"testing"

	"github.com/ChainSafe/slotguard/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := New(Settings{InMemory: ptrTo(true)})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func Test_Database(t *testing.T) {
	t.Parallel()

	db := newTestDatabase(t)

	_, err := db.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)
	assert.EqualError(t, err, "key not found: 0x01")

	batch := db.NewBatch()
	err = batch.Put([]byte{1}, []byte{2})
	require.NoError(t, err)
	err = batch.Put([]byte{3}, []byte{4})
	require.NoError(t, err)

	_, err = db.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)

	err = batch.Flush()
	require.NoError(t, err)

	value, err := db.Get([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	batch = db.NewBatch()
	err = batch.Del([]byte{1})
	require.NoError(t, err)
	err = batch.Put([]byte{3}, []byte{5})
	require.NoError(t, err)
	err = batch.Flush()
	require.NoError(t, err)

	_, err = db.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)
	value, err = db.Get([]byte{3})
	require.NoError(t, err)
	assert.Equal(t, []byte{5}, value)
}

func Test_writeBatch_Reset(t *testing.T) {
	t.Parallel()

	db := newTestDatabase(t)

	batch := db.NewBatch()
	err := batch.Put([]byte{1}, []byte{2})
	require.NoError(t, err)
	batch.Reset()
	err = batch.Flush()
	require.NoError(t, err)

	_, err = db.Get([]byte{1})
	require.ErrorIs(t, err, database.ErrKeyNotFound)
}

func Test_New_onDisk(t *testing.T) {
	t.Parallel()

	path := t.TempDir()
	db, err := New(Settings{Path: path})
	require.NoError(t, err)

	batch := db.NewBatch()
	err = batch.Put([]byte{1}, []byte{2})
	require.NoError(t, err)
	err = batch.Flush()
	require.NoError(t, err)
	err = db.Close()
	require.NoError(t, err)

	db, err = New(Settings{Path: path})
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		assert.NoError(t, err)
	}()

	value, err := db.Get([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)
}
