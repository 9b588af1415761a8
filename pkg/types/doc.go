// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the lootmix packages:
// the generation seed and the process exit code.
//
// This package is a leaf dependency: it imports only the standard library.
package types
