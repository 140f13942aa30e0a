// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package badger provides a database implementation using badger v2.
package badger

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/slotguard/internal/database"
	"github.com/dgraph-io/badger/v2"
)

var _ database.Database = (*Database)(nil)

// Database is database implementation using a badger/v2 database.
type Database struct {
	badgerDatabase *badger.DB
}

// New returns a new database based on a badger v2 database.
func New(settings Settings) (db *Database, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	badgerOptions := badger.DefaultOptions(settings.Path)
	badgerOptions = badgerOptions.WithLogger(nil)
	badgerOptions = badgerOptions.WithInMemory(*settings.InMemory)
	badgerDatabase, err := badger.Open(badgerOptions)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}

	return &Database{
		badgerDatabase: badgerDatabase,
	}, nil
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return fmt.Errorf("getting item from transaction: %w", err)
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("copying value: %w", err)
		}

		return nil
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
	}

	return value, transformError(err)
}

// NewBatch returns a new batch committed as a single badger transaction.
func (db *Database) NewBatch() database.Batch {
	return newWriteBatch(db.badgerDatabase)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	err = db.badgerDatabase.Close()
	return transformError(err)
}

// transformError transforms a badger error into a database error
// eventually, for errors defined in the parent database package.
func transformError(badgerErr error) (err error) {
	if errors.Is(badgerErr, badger.ErrDBClosed) {
		return fmt.Errorf("%w", database.ErrClosed)
	}
	return badgerErr
}
