// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for lootmix.
//
// The root command generates a datapack; the groups and config subcommands
// inspect the loot table tree and the configuration.
package cmd
