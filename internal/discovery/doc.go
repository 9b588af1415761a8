// SPDX-License-Identifier: MPL-2.0

// Package discovery walks a loot table tree and partitions its files into
// groups.
//
// The tree is walked with filepath.WalkDir, which visits entries in lexical
// order, so the file order (and with it the random stream consumption of the
// shuffle) is stable across machines for identical trees. Each file belongs to
// the group named by its top-level directory. Files outside the known groups
// are skipped and reported as diagnostics rather than failing the run.
//
// File organization:
//   - discovery.go: Tree and the walk
//   - diagnostic.go: non-fatal findings returned to the caller
//   - fingerprint.go: content fingerprint of a discovered tree
package discovery
