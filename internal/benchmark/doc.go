// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for the lootmix hot paths at vanilla
// scale (about 1200 loot tables):
//   - CUE configuration loading
//   - loot table discovery and fingerprinting
//   - permutation drawing
//   - archive building and the end-to-end generation
//
// The profile they produce can feed PGO builds:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
