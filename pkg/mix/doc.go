// SPDX-License-Identifier: MPL-2.0

// Package mix resolves which loot-table groups are shuffled together.
//
// A loot-table tree is split into a closed set of groups (by default
// "blocks", "chests", "entities" and "gameplay"). The user picks zero or more
// disjoint sets of groups; every set becomes one shuffle pool and every group
// not named in any set is copied unchanged ("vanilla"). Selecting nothing, or
// a single set naming every group, shuffles the whole tree as one pool.
package mix
