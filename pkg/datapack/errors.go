// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable is the sentinel error wrapped by SourceError.
	ErrSourceUnreadable = errors.New("source loot table unreadable")
	// ErrDuplicateEntry is returned when two records would share one archive path.
	ErrDuplicateEntry = errors.New("duplicate archive entry")
)

// SourceError is returned when a loot table cannot be read while staging
// the archive. No archive is produced.
type SourceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("read loot table %s: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *SourceError) Unwrap() []error { return []error{ErrSourceUnreadable, e.Err} }
