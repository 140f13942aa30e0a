// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database defines the key-value store contract used by the
// slot state, together with an adapter for chaindb databases.
package database

import (
	"errors"
	"io"
)

var (
	// ErrKeyNotFound is returned, wrapped, by Get when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrClosed is returned when the database is used after being closed.
	ErrClosed = errors.New("database closed")
)

// Reader reads values from the database.
type Reader interface {
	// Get returns the value stored at the given key. It returns an error
	// wrapping ErrKeyNotFound if the key is absent.
	Get(key []byte) (value []byte, err error)
}

// Batch stages puts and deletes and applies all of them atomically on Flush.
// A batch is not safe for concurrent use.
type Batch interface {
	Put(key, value []byte) error
	Del(key []byte) error
	// Flush commits all staged operations in a single transaction:
	// either all of them are applied or none is.
	Flush() error
	// Reset discards all staged operations.
	Reset()
}

// Database is the key-value store contract.
type Database interface {
	Reader
	io.Closer
	NewBatch() Batch
}
