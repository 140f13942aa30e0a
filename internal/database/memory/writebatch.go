// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import (
	"github.com/ChainSafe/slotguard/internal/database"
)

type operation struct {
	key    string
	value  []byte
	delete bool
}

// writeBatch stages operations and applies them to the
// database while holding its lock.
type writeBatch struct {
	operations []operation
	database   *Database
}

func newWriteBatch(database *Database) *writeBatch {
	return &writeBatch{
		database: database,
	}
}

// Put stages a value to be set at the given key.
// The value byte slice is deep copied.
func (wb *writeBatch) Put(key, value []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:   string(key),
		value: copyBytes(value),
	})
	return nil
}

// Del stages the deletion of the given key.
func (wb *writeBatch) Del(key []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:    string(key),
		delete: true,
	})
	return nil
}

// Flush applies all staged operations to the database at once.
func (wb *writeBatch) Flush() (err error) {
	wb.database.mutex.Lock()
	defer wb.database.mutex.Unlock()

	if wb.database.closed {
		return database.ErrClosed
	}

	for _, op := range wb.operations {
		if op.delete {
			delete(wb.database.keyValues, op.key)
			continue
		}
		wb.database.keyValues[op.key] = op.value
	}

	wb.operations = nil
	return nil
}

// Reset discards all staged operations.
func (wb *writeBatch) Reset() {
	wb.operations = nil
}
