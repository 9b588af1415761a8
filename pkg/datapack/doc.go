// SPDX-License-Identifier: MPL-2.0

// Package datapack assembles the loot-table datapack archive.
//
// The archive is a deflate-compressed zip built entirely in memory:
//
//	pack.mcmeta                                   pack descriptor
//	data/minecraft/loot_tables/<path>             relabeled and vanilla tables
//	data/minecraft/tags/functions/load.json       function tag naming <name>:reset
//	data/<name>/functions/reset.mcfunction        broadcast shown on load
//
// Entry headers carry no timestamps, so identical inputs always produce
// byte-identical archives. The archive is only persisted once every entry
// has been staged, and the final file is replaced atomically.
package datapack
