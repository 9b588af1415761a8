// SPDX-License-Identifier: MPL-2.0

// Package shuffle draws the seeded relabeling of loot-table paths.
//
// Each pool is permuted independently: every path of a pool is assigned a
// destination path from the same pool, each destination used exactly once.
// Fixed points are allowed. The generator is consumed pool by pool, path by
// path, so the same generator state and the same pools always produce the
// same Map.
package shuffle

import "math/rand/v2"

type (
	// Pool is an ordered set of paths shuffled among themselves.
	Pool struct {
		Name  string
		Files []string
	}

	// Mapping relabels the content of Source under the path Destination.
	Mapping struct {
		Pool        string
		Source      string
		Destination string
	}

	// Map is the ordered result of Permute: pools in input order, sources in
	// pool order.
	Map struct {
		pairs []Mapping
		index map[string]int
	}
)

// Permute draws a random bijection for every pool using rng.
//
// For the i-th source of a pool it picks uniformly among the destinations not
// yet taken, which is a Fisher-Yates shuffle over a working copy of the pool.
// Empty pools contribute nothing.
func Permute(rng *rand.Rand, pools []Pool) *Map {
	total := 0
	for _, p := range pools {
		total += len(p.Files)
	}

	m := &Map{
		pairs: make([]Mapping, 0, total),
		index: make(map[string]int, total),
	}

	for _, p := range pools {
		work := make([]string, len(p.Files))
		copy(work, p.Files)

		n := len(work)
		for i, src := range p.Files {
			j := i + rng.IntN(n-i)
			work[i], work[j] = work[j], work[i]

			m.index[src] = len(m.pairs)
			m.pairs = append(m.pairs, Mapping{Pool: p.Name, Source: src, Destination: work[i]})
		}
	}

	return m
}

// Len returns the number of mapped sources.
func (m *Map) Len() int { return len(m.pairs) }

// Pairs returns the mappings in draw order.
func (m *Map) Pairs() []Mapping {
	out := make([]Mapping, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Destination returns the path that receives the content of source.
func (m *Map) Destination(source string) (string, bool) {
	i, ok := m.index[source]
	if !ok {
		return "", false
	}
	return m.pairs[i].Destination, true
}
