// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/slotguard/dot/types"
	"github.com/ChainSafe/slotguard/internal/database"
	"github.com/ChainSafe/slotguard/lib/common"
	"github.com/ChainSafe/slotguard/pkg/scale"

	log "github.com/ChainSafe/log15"
)

var logger = log.New("pkg", "state")

const (
	// MaxSlotCapacity is the number of slots we keep at least in database.
	MaxSlotCapacity uint64 = 1000
	// PruningBound is the slot span at which we prune slots.
	PruningBound = 2 * MaxSlotCapacity
)

var (
	slotHeaderMapKey   = []byte("slot_header_map")
	slotHeaderStartKey = []byte("slot_header_start")
)

var (
	// ErrStorageCorrupted is returned when a value read from the
	// database cannot be decoded.
	ErrStorageCorrupted = errors.New("slots database is corrupted")
	// ErrStoreUnavailable is returned when the database fails
	// to read or write.
	ErrStoreUnavailable = errors.New("slots database is unavailable")
)

// Header is a block header identified by the hash of its content.
type Header interface {
	Hash() common.Hash
}

// SlotEntry records that a signer produced a header for a slot.
type SlotEntry[H Header, P comparable] struct {
	Header H
	Signer P
}

// Metrics records the slot state activity.
type Metrics interface {
	Checked()
	EquivocationDetected()
	SlotsPruned(count uint64)
	FirstSavedSlotSet(slot uint64)
}

// SlotState tracks the headers seen per slot and signer in the database
// to detect equivocations, pruning slots older than MaxSlotCapacity from
// the current slot once they span PruningBound slots.
//
// SlotState holds no lock and no state besides the database: the
// read and write of CheckEquivocation are not atomic together, so
// calls must be serialised by the caller, for example the block import.
type SlotState[H Header, P comparable] struct {
	db      database.Database
	metrics Metrics
}

// NewSlotState creates a slot state using the given database.
// A nil metrics disables metrics.
func NewSlotState[H Header, P comparable](db database.Database, metrics Metrics) *SlotState[H, P] {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &SlotState[H, P]{
		db:      db,
		metrics: metrics,
	}
}

// NewBabeSlotState creates a slot state for BABE headers signed by sr25519 authorities.
func NewBabeSlotState(db database.Database, metrics Metrics) *SlotState[types.Header, types.AuthorityID] {
	return NewSlotState[types.Header, types.AuthorityID](db, metrics)
}

// CheckEquivocation checks if the header is an equivocation and returns
// the proof in that case. If it is not, the header is recorded for its slot
// and old slots are pruned if needed.
//
// Note: it detects equivocations only when slotNow - slot <= MaxSlotCapacity,
// and only once slotNow reached the first saved slot: slots are expected to be
// visited sequentially, so a header checked with a slotNow behind the first
// saved slot is neither checked nor recorded.
// Pruning stages one delete per pruned slot, so the batch grows with the
// number of slots slotNow advanced since the last pruning.
func (s *SlotState[H, P]) CheckEquivocation(slotNow, slot uint64, header H,
	signer P) (*types.EquivocationProof[H, P], error) {
	s.metrics.Checked()

	// We don't check equivocations for old headers out of our capacity.
	// A slot ahead of slotNow saturates to zero and is checked.
	if saturatingSub(slotNow, slot) > MaxSlotCapacity {
		logger.Trace("skipping equivocation check of old slot",
			"slot", slot, "now", slotNow)
		return nil, nil
	}

	currentSlotKey := slotHeaderMapKeyFor(slot)
	headersWithSigners, err := s.loadSlotEntries(currentSlotKey)
	if err != nil {
		return nil, fmt.Errorf("loading entries of slot %d: %w", slot, err)
	}

	firstSavedSlot, found, err := s.loadFirstSavedSlot()
	if err != nil {
		return nil, fmt.Errorf("loading first saved slot: %w", err)
	}
	if !found {
		firstSavedSlot = slot
	}

	if slotNow < firstSavedSlot {
		// The code below assumes that slots will be visited sequentially.
		logger.Trace("skipping equivocation check of slot ahead of first saved slot",
			"slot", slot, "now", slotNow, "first", firstSavedSlot)
		return nil, nil
	}

	headerHash := header.Hash()
	for _, entry := range headersWithSigners {
		// A proof of equivocation consists of two headers:
		// 1) signed by the same voter,
		if entry.Signer != signer {
			continue
		}

		// 2) with different hash
		if entry.Header.Hash() == headerHash {
			// We don't need to continue in case of duplicated header,
			// since it's already saved and a possible equivocation
			// would have been detected before.
			logger.Trace("skipping duplicate header",
				"slot", slot, "signer", signer, "hash", headerHash)
			return nil, nil
		}

		s.metrics.EquivocationDetected()
		logger.Info("equivocation detected",
			"slot", slot, "offender", signer,
			"first", entry.Header.Hash(), "second", headerHash)
		return &types.EquivocationProof[H, P]{
			Offender: signer,
			// 3) and mentioning the same slot.
			Slot:         slot,
			FirstHeader:  entry.Header,
			SecondHeader: header,
		}, nil
	}

	var keysToDelete [][]byte
	newFirstSavedSlot := firstSavedSlot

	if saturatingSub(slotNow, firstSavedSlot) >= PruningBound {
		newFirstSavedSlot = saturatingSub(slotNow, MaxSlotCapacity)

		for prunedSlot := firstSavedSlot; prunedSlot < newFirstSavedSlot; prunedSlot++ {
			keysToDelete = append(keysToDelete, slotHeaderMapKeyFor(prunedSlot))
		}

		logger.Debug("pruning slots", "from", firstSavedSlot,
			"to", newFirstSavedSlot, "count", len(keysToDelete))
	}

	headersWithSigners = append(headersWithSigners, SlotEntry[H, P]{
		Header: header,
		Signer: signer,
	})

	err = s.write(currentSlotKey, headersWithSigners, newFirstSavedSlot, keysToDelete)
	if err != nil {
		return nil, fmt.Errorf("recording header for slot %d: %w", slot, err)
	}

	if len(keysToDelete) > 0 {
		s.metrics.SlotsPruned(uint64(len(keysToDelete)))
	}
	s.metrics.FirstSavedSlotSet(newFirstSavedSlot)

	return nil, nil
}

// SlotEntries returns the headers and signers recorded for the given slot,
// in the order they were recorded.
func (s *SlotState[H, P]) SlotEntries(slot uint64) ([]SlotEntry[H, P], error) {
	return s.loadSlotEntries(slotHeaderMapKeyFor(slot))
}

// FirstSavedSlot returns the oldest slot which can still be in the database.
// The boolean returned is false if no header was ever recorded.
func (s *SlotState[H, P]) FirstSavedSlot() (slot uint64, found bool, err error) {
	return s.loadFirstSavedSlot()
}

func (s *SlotState[H, P]) loadSlotEntries(key []byte) (entries []SlotEntry[H, P], err error) {
	encoded, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: getting key 0x%x: %w", ErrStoreUnavailable, key, err)
	}

	err = scale.Unmarshal(encoded, &entries)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding headers with signers: %w", ErrStorageCorrupted, err)
	}

	return entries, nil
}

func (s *SlotState[H, P]) loadFirstSavedSlot() (slot uint64, found bool, err error) {
	encoded, err := s.db.Get(slotHeaderStartKey)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: getting slot header start key: %w", ErrStoreUnavailable, err)
	}

	err = scale.Unmarshal(encoded, &slot)
	if err != nil {
		return 0, false, fmt.Errorf("%w: decoding first saved slot: %w", ErrStorageCorrupted, err)
	}

	return slot, true, nil
}

// write writes the slot entries and the first saved slot, and deletes the
// pruned slot keys, all in a single database batch.
func (s *SlotState[H, P]) write(slotKey []byte, entries []SlotEntry[H, P],
	firstSavedSlot uint64, keysToDelete [][]byte) (err error) {
	encodedEntries, err := scale.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding headers with signers: %w", err)
	}

	encodedFirstSavedSlot, err := scale.Marshal(firstSavedSlot)
	if err != nil {
		return fmt.Errorf("encoding first saved slot: %w", err)
	}

	batch := s.db.NewBatch()
	err = batch.Put(slotKey, encodedEntries)
	if err != nil {
		return fmt.Errorf("%w: batch putting encoded headers with signers: %w", ErrStoreUnavailable, err)
	}

	err = batch.Put(slotHeaderStartKey, encodedFirstSavedSlot)
	if err != nil {
		return fmt.Errorf("%w: batch putting encoded first saved slot: %w", ErrStoreUnavailable, err)
	}

	for _, toDelete := range keysToDelete {
		err = batch.Del(toDelete)
		if err != nil {
			return fmt.Errorf("%w: batch deleting key 0x%x: %w", ErrStoreUnavailable, toDelete, err)
		}
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("%w: flushing batch: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func slotHeaderMapKeyFor(slot uint64) []byte {
	slotEncoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(slotEncoded, slot)
	return bytes.Join([][]byte{slotHeaderMapKey, slotEncoded}, nil)
}

func saturatingSub(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return 0
}

type noopMetrics struct{}

func (noopMetrics) Checked()                 {}
func (noopMetrics) EquivocationDetected()    {}
func (noopMetrics) SlotsPruned(uint64)       {}
func (noopMetrics) FirstSavedSlotSet(uint64) {}
