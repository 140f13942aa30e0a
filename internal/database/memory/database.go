// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package memory provides an in-memory database implementation.
package memory

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/slotguard/internal/database"
)

var _ database.Database = (*Database)(nil)

// Database is an in-memory database implementation.
type Database struct {
	closed    bool
	keyValues map[string][]byte
	mutex     sync.RWMutex
}

// New returns a new in-memory database.
func New() *Database {
	return &Database{
		keyValues: make(map[string][]byte),
	}
}

// Get retrieves a value from the database using the given key.
// It returns `ErrKeyNotFound` if the key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	if db.closed {
		return nil, database.ErrClosed
	}

	value, ok := db.keyValues[string(key)]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
	}

	return copyBytes(value), nil
}

// NewBatch returns a new write batch for the database.
// It is not thread-safe to write to the batch, but flushing it is
// thread-safe for the database.
func (db *Database) NewBatch() database.Batch {
	return newWriteBatch(db)
}

// Len returns the number of keys stored in the database.
func (db *Database) Len() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.keyValues)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.closed = true
	db.keyValues = nil
	return nil
}

func copyBytes(b []byte) (bCopy []byte) {
	bCopy = make([]byte, len(b))
	copy(bCopy, b)
	return bCopy
}
