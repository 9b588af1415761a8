// SPDX-License-Identifier: MPL-2.0

// Package config handles lootmix configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the --config file when given, otherwise from
// ~/.config/lootmix/config.cue (or the XDG / platform equivalent), otherwise
// from ./config.cue. Without any file the defaults apply. Files are validated
// against the embedded #Config schema (config_schema.cue) before they are
// merged into Viper.
package config
