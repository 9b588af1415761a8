// SPDX-License-Identifier: MPL-2.0

package mix

import (
	"slices"
	"strings"
)

// Selection is a validated, normalized mix choice.
type Selection struct {
	known []Group
	pools [][]Group
}

// All returns a selection that shuffles every known group as one pool.
func All(known []Group) Selection {
	return Selection{known: slices.Clone(known)}
}

// ParseSelection validates the raw --mix sets against the known groups.
//
// Every name must be known and may appear only once across all sets. Unknown
// names are reported before duplicates. Empty names and empty sets are
// ignored. When no names remain, or a single set names every known group, the
// result is the unrestricted selection.
func ParseSelection(sets [][]string, known []Group) (Selection, error) {
	var cleaned [][]Group
	for _, set := range sets {
		var pool []Group
		for _, raw := range set {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			if !slices.Contains(known, Group(name)) {
				return Selection{}, &UnknownGroupError{Value: name, Known: slices.Clone(known)}
			}
			pool = append(pool, Group(name))
		}
		if len(pool) > 0 {
			cleaned = append(cleaned, pool)
		}
	}

	seen := make(map[Group]bool)
	for _, pool := range cleaned {
		for _, g := range pool {
			if seen[g] {
				return Selection{}, &DuplicateGroupError{Value: g}
			}
			seen[g] = true
		}
	}

	if len(cleaned) == 0 || (len(cleaned) == 1 && len(cleaned[0]) == len(known)) {
		return All(known), nil
	}

	return Selection{known: slices.Clone(known), pools: cleaned}, nil
}

// All reports whether every group is shuffled as one pool.
func (s Selection) All() bool { return len(s.pools) == 0 }

// Known returns the groups the selection was validated against.
func (s Selection) Known() []Group { return slices.Clone(s.known) }

// Pools returns the groups of each shuffle pool in selection order. The
// unrestricted selection yields one pool holding every known group.
func (s Selection) Pools() [][]Group {
	if s.All() {
		return [][]Group{slices.Clone(s.known)}
	}
	out := make([][]Group, len(s.pools))
	for i, p := range s.pools {
		out[i] = slices.Clone(p)
	}
	return out
}

// Vanilla returns the known groups that are copied unchanged, in known order.
func (s Selection) Vanilla() []Group {
	if s.All() {
		return nil
	}
	var out []Group
	for _, g := range s.known {
		if !s.mixes(g) {
			out = append(out, g)
		}
	}
	return out
}

// Suffix returns the datapack name suffix: one underscore-prefixed block of
// group initials per pool, or "" for the unrestricted selection.
func (s Selection) Suffix() string {
	var sb strings.Builder
	for _, pool := range s.pools {
		sb.WriteByte('_')
		for _, g := range pool {
			sb.WriteString(g.Initial())
		}
	}
	return sb.String()
}

// String describes the pools, e.g. "blocks, chests | entities".
func (s Selection) String() string {
	if s.All() {
		return "all"
	}
	parts := make([]string, len(s.pools))
	for i, pool := range s.pools {
		parts[i] = JoinGroups(pool, ", ")
	}
	return strings.Join(parts, " | ")
}

func (s Selection) mixes(g Group) bool {
	for _, pool := range s.pools {
		if slices.Contains(pool, g) {
			return true
		}
	}
	return false
}
