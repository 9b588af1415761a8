// SPDX-License-Identifier: MPL-2.0

// Package generate runs one datapack generation: discover the tree, draw the
// permutation, stage the archive and write it. It decouples the CLI layer
// from the generation pipeline; nothing here writes to stdout, progress goes
// to the injected logger and findings are returned as data.
package generate
