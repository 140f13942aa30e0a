// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
)

var _ Database = (*chainDB)(nil)

// chainDB adapts a chaindb database, typically the node database,
// to the Database interface.
type chainDB struct {
	db chaindb.Database
}

// NewChainDB returns a Database backed by the given chaindb database.
func NewChainDB(db chaindb.Database) Database {
	return &chainDB{db: db}
}

// OpenChainDB opens a badger backed chaindb database at the given directory.
func OpenChainDB(dataDir string, inMemory bool) (Database, error) {
	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  dataDir,
		InMemory: inMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("opening chaindb at %s: %w", dataDir, err)
	}
	return NewChainDB(db), nil
}

// Get returns the value at the given key, or an error wrapping
// ErrKeyNotFound if the key does not exist.
func (c *chainDB) Get(key []byte) (value []byte, err error) {
	value, err = c.db.Get(key)
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: 0x%x", ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("getting 0x%x from chaindb: %w", key, err)
	}
	return value, nil
}

// NewBatch returns a batch staging operations until Flush
// writes them through a single chaindb batch.
func (c *chainDB) NewBatch() Batch {
	return &chainDBBatch{db: c.db}
}

// Close closes the underlying chaindb database.
func (c *chainDB) Close() error {
	return c.db.Close()
}

type operation struct {
	key    []byte
	value  []byte
	delete bool
}

type chainDBBatch struct {
	db         chaindb.Database
	operations []operation
}

func (b *chainDBBatch) Put(key, value []byte) error {
	b.operations = append(b.operations, operation{
		key:   copyBytes(key),
		value: copyBytes(value),
	})
	return nil
}

func (b *chainDBBatch) Del(key []byte) error {
	b.operations = append(b.operations, operation{
		key:    copyBytes(key),
		delete: true,
	})
	return nil
}

func (b *chainDBBatch) Flush() (err error) {
	batch := b.db.NewBatch()
	for _, op := range b.operations {
		if op.delete {
			err = batch.Del(op.key)
		} else {
			err = batch.Put(op.key, op.value)
		}
		if err != nil {
			batch.Reset()
			return fmt.Errorf("staging 0x%x in chaindb batch: %w", op.key, err)
		}
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("flushing chaindb batch: %w", err)
	}

	b.Reset()
	return nil
}

func (b *chainDBBatch) Reset() {
	b.operations = nil
}

func copyBytes(b []byte) (bCopy []byte) {
	bCopy = make([]byte, len(b))
	copy(bCopy, b)
	return bCopy
}
