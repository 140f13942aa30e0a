// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
)

type operation struct {
	key    []byte
	value  []byte
	delete bool
}

// writeBatch stages operations and commits them in one
// badger update transaction, unlike badger's own WriteBatch
// which may split writes across several transactions.
type writeBatch struct {
	badgerDatabase *badger.DB
	operations     []operation
}

func newWriteBatch(badgerDatabase *badger.DB) *writeBatch {
	return &writeBatch{
		badgerDatabase: badgerDatabase,
	}
}

// Put stages a value to be set at the given key.
func (wb *writeBatch) Put(key, value []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:   copyBytes(key),
		value: copyBytes(value),
	})
	return nil
}

// Del stages the deletion of the given key.
func (wb *writeBatch) Del(key []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:    copyBytes(key),
		delete: true,
	})
	return nil
}

// Flush commits the staged operations in a single transaction.
func (wb *writeBatch) Flush() (err error) {
	err = wb.badgerDatabase.Update(func(txn *badger.Txn) error {
		for _, op := range wb.operations {
			var err error
			if op.delete {
				err = txn.Delete(op.key)
			} else {
				err = txn.Set(op.key, op.value)
			}
			if err != nil {
				return fmt.Errorf("staging 0x%x in transaction: %w", op.key, err)
			}
		}
		return nil
	})
	if err != nil {
		return transformError(err)
	}

	wb.operations = nil
	return nil
}

// Reset discards the staged operations.
func (wb *writeBatch) Reset() {
	wb.operations = nil
}

func copyBytes(b []byte) (bCopy []byte) {
	bCopy = make([]byte, len(b))
	copy(bCopy, b)
	return bCopy
}
