// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/lootmix/lootmix/pkg/types"
)

var (
	_ pflag.Value = (*seedFlag)(nil)
	_ pflag.Value = (*mixFlag)(nil)
)

type (
	// seedFlag keeps the raw --seed text. Parsing is deferred to the command
	// so a bad seed is reported with its issue guidance.
	seedFlag struct {
		raw string
		set bool
	}

	// mixFlag collects one comma-separated group set per --mix occurrence.
	mixFlag struct {
		sets [][]string
	}
)

func (f *seedFlag) String() string { return f.raw }

func (f *seedFlag) Set(s string) error {
	f.raw = s
	f.set = true
	return nil
}

func (f *seedFlag) Type() string { return "int" }

// resolve returns the given seed, or a freshly drawn one when --seed was not
// passed. drawn reports the latter.
func (f *seedFlag) resolve() (seed types.Seed, drawn bool, err error) {
	if !f.set {
		return types.NewRandomSeed(), true, nil
	}
	seed, err = types.ParseSeed(f.raw)
	return seed, false, err
}

func (f *mixFlag) String() string {
	parts := make([]string, len(f.sets))
	for i, set := range f.sets {
		parts[i] = strings.Join(set, ",")
	}
	return strings.Join(parts, " ")
}

func (f *mixFlag) Set(s string) error {
	f.sets = append(f.sets, strings.Split(s, ","))
	return nil
}

func (f *mixFlag) Type() string { return "groups" }
