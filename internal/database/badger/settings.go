// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"errors"
	"fmt"
	"path/filepath"
)

var ErrPathWithInMemory = errors.New("path must be empty for an in-memory database")

// Settings is the database settings.
type Settings struct {
	// Path is the database directory path to use.
	// It defaults to the current directory if left unset,
	// and must be left empty for an in-memory database.
	Path string
	// InMemory is whether the database should be in memory only.
	// It defaults to false.
	InMemory *bool
}

// SetDefaults sets the default values on the settings.
func (s *Settings) SetDefaults() {
	if s.InMemory == nil {
		s.InMemory = ptrTo(false)
	}

	if s.Path == "" && !*s.InMemory {
		s.Path = "."
	}
}

// Validate validates the settings.
func (s Settings) Validate() (err error) {
	if *s.InMemory {
		if s.Path != "" {
			return fmt.Errorf("%w: %s", ErrPathWithInMemory, s.Path)
		}
		return nil
	}

	_, err = filepath.Abs(s.Path)
	if err != nil {
		return fmt.Errorf("changing path to absolute path: %w", err)
	}

	return nil
}

func ptrTo[T any](value T) *T { return &value }
