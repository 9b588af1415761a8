// SPDX-License-Identifier: MPL-2.0

package shuffle

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 1))
}

func files(prefix string, n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = fmt.Sprintf("%s/%02d.json", prefix, i)
	}
	return out
}

func TestPermuteIsBijectionPerPool(t *testing.T) {
	t.Parallel()

	pools := []Pool{
		{Name: "blocks", Files: files("blocks", 17)},
		{Name: "chests", Files: files("chests", 5)},
		{Name: "empty"},
	}

	m := Permute(newRand(42), pools)
	require.Equal(t, 22, m.Len())

	for _, p := range pools {
		var dests []string
		for _, pair := range m.Pairs() {
			if pair.Pool != p.Name {
				continue
			}
			assert.Contains(t, p.Files, pair.Source)
			dests = append(dests, pair.Destination)
		}
		slices.Sort(dests)
		want := slices.Clone(p.Files)
		slices.Sort(want)
		if len(want) == 0 {
			assert.Empty(t, dests)
			continue
		}
		assert.Equal(t, want, dests, "pool %s destinations are not a permutation of its sources", p.Name)
	}
}

func TestPermuteNeverCrossesPools(t *testing.T) {
	t.Parallel()

	m := Permute(newRand(7), []Pool{
		{Name: "a", Files: files("a", 10)},
		{Name: "b", Files: files("b", 10)},
	})

	for _, pair := range m.Pairs() {
		assert.Equal(t, strings.SplitN(pair.Source, "/", 2)[0], strings.SplitN(pair.Destination, "/", 2)[0])
	}
}

func TestPermuteSingletonIsFixedPoint(t *testing.T) {
	t.Parallel()

	m := Permute(newRand(1), []Pool{{Name: "only", Files: []string{"gameplay/fishing.json"}}})

	dest, ok := m.Destination("gameplay/fishing.json")
	require.True(t, ok)
	assert.Equal(t, "gameplay/fishing.json", dest)
}

func TestPermuteIsDeterministic(t *testing.T) {
	t.Parallel()

	pools := []Pool{{Name: "all", Files: files("x", 50)}}

	a := Permute(newRand(99), pools)
	b := Permute(newRand(99), pools)
	assert.Equal(t, a.Pairs(), b.Pairs())

	c := Permute(newRand(100), pools)
	assert.NotEqual(t, a.Pairs(), c.Pairs())
}

func TestPermuteKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	in := files("x", 8)
	m := Permute(newRand(3), []Pool{{Name: "all", Files: in}})

	got := make([]string, 0, m.Len())
	for _, pair := range m.Pairs() {
		got = append(got, pair.Source)
	}
	assert.Equal(t, in, got)
}

func TestPermuteDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := files("x", 8)
	before := slices.Clone(in)
	Permute(newRand(5), []Pool{{Name: "all", Files: in}})
	assert.Equal(t, before, in)
}

func TestDestinationUnknownSource(t *testing.T) {
	t.Parallel()

	m := Permute(newRand(5), []Pool{{Name: "all", Files: files("x", 2)}})
	_, ok := m.Destination("nope")
	assert.False(t, ok)
}

// TestPermuteIsUniform checks that all 3! = 6 permutations of a three-element
// pool occur with equal frequency using a chi-square goodness-of-fit test.
func TestPermuteIsUniform(t *testing.T) {
	t.Parallel()

	const trials = 60000
	in := []string{"a", "b", "c"}
	rng := newRand(2024)

	counts := make(map[string]int)
	for range trials {
		m := Permute(rng, []Pool{{Name: "p", Files: in}})
		var key strings.Builder
		for _, pair := range m.Pairs() {
			key.WriteString(pair.Destination)
		}
		counts[key.String()]++
	}

	require.Len(t, counts, 6, "not every permutation was produced: %v", counts)

	expected := float64(trials) / 6
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}

	// Critical value for 5 degrees of freedom at p = 0.001.
	assert.Less(t, chi2, 20.515, "distribution is not uniform: %v", counts)
}
