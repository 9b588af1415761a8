// SPDX-License-Identifier: MPL-2.0

package mix

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// GroupBlocks holds the tables dropped by broken blocks.
	GroupBlocks Group = "blocks"
	// GroupChests holds the tables of generated containers.
	GroupChests Group = "chests"
	// GroupEntities holds the tables dropped by killed entities.
	GroupEntities Group = "entities"
	// GroupGameplay holds fishing, bartering and similar tables.
	GroupGameplay Group = "gameplay"
)

var (
	// ErrUnknownGroup is the sentinel error wrapped by UnknownGroupError.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrDuplicateGroup is the sentinel error wrapped by DuplicateGroupError.
	ErrDuplicateGroup = errors.New("duplicate group")
)

type (
	// Group names a top-level directory of the loot-table tree.
	Group string

	// UnknownGroupError is returned when a selection names a group outside
	// the known set.
	UnknownGroupError struct {
		Value string
		Known []Group
	}

	// DuplicateGroupError is returned when a group appears more than once
	// across all selected sets.
	DuplicateGroupError struct {
		Value Group
	}
)

// DefaultGroups returns the groups of a vanilla loot-table tree in
// enumeration order.
func DefaultGroups() []Group {
	return []Group{GroupBlocks, GroupChests, GroupEntities, GroupGameplay}
}

// String returns the group name.
func (g Group) String() string { return string(g) }

// Initial returns the first character of the group name, used in datapack names.
func (g Group) Initial() string {
	for _, r := range string(g) {
		return string(r)
	}
	return ""
}

// Error implements the error interface.
func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown group %q: --mix only accepts the following groups: %s", e.Value, JoinGroups(e.Known, ", "))
}

// Unwrap returns ErrUnknownGroup for errors.Is compatibility.
func (e *UnknownGroupError) Unwrap() error { return ErrUnknownGroup }

// Error implements the error interface.
func (e *DuplicateGroupError) Error() string {
	return fmt.Sprintf("group %q is listed more than once: each group listed for --mix can only appear once", e.Value)
}

// Unwrap returns ErrDuplicateGroup for errors.Is compatibility.
func (e *DuplicateGroupError) Unwrap() error { return ErrDuplicateGroup }

// JoinGroups joins group names with sep.
func JoinGroups(groups []Group, sep string) string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = string(g)
	}
	return strings.Join(names, sep)
}
