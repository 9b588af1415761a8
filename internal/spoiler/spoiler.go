// SPDX-License-Identifier: MPL-2.0

// Package spoiler renders the spoiler log of a generated datapack: which
// table's drops now sit behind which identifier.
package spoiler

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lootmix/lootmix/pkg/shuffle"
)

// Ext is appended to the datapack name to form the spoiler file name.
const Ext = ".spoiler.yaml"

type (
	// Log is the document written next to the datapack.
	Log struct {
		Datapack    string   `yaml:"datapack"`
		Seed        int64    `yaml:"seed"`
		Selection   string   `yaml:"selection"`
		Digest      string   `yaml:"digest"`
		Fingerprint string   `yaml:"source_fingerprint,omitempty"`
		Pools       []Pool   `yaml:"pools"`
		Vanilla     []string `yaml:"vanilla,omitempty"`
	}

	// Pool lists the relabelings of one shuffle pool.
	Pool struct {
		Name     string  `yaml:"name"`
		Mappings []Entry `yaml:"mappings"`
	}

	// Entry says that Path now drops what Drops used to.
	Entry struct {
		Path  string `yaml:"path"`
		Drops string `yaml:"drops"`
	}
)

// PoolsFrom groups mappings by pool, keeping draw order.
func PoolsFrom(mappings []shuffle.Mapping) []Pool {
	var pools []Pool
	index := make(map[string]int)
	for _, m := range mappings {
		i, ok := index[m.Pool]
		if !ok {
			i = len(pools)
			index[m.Pool] = i
			pools = append(pools, Pool{Name: m.Pool})
		}
		pools[i].Mappings = append(pools[i].Mappings, Entry{Path: m.Destination, Drops: m.Source})
	}
	return pools
}

// Marshal encodes the log as YAML with two-space indentation.
func (l *Log) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encode spoiler log: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode spoiler log: %w", err)
	}
	return buf.Bytes(), nil
}
