// SPDX-License-Identifier: MPL-2.0

package mix

import (
	"github.com/lootmix/lootmix/pkg/datapack"
	"github.com/lootmix/lootmix/pkg/types"
)

// NewMeta derives the datapack name, description and archive filename from
// the seed and the selection.
func NewMeta(seed types.Seed, sel Selection) datapack.Meta {
	name := "random_loot_" + seed.String() + sel.Suffix()
	desc := "Loot Table Randomizer, Seed: " + seed.String()
	if !sel.All() {
		desc += ", Folders: " + sel.String()
	}

	return datapack.Meta{
		Name:        name,
		Description: desc,
		Filename:    name + datapack.ArchiveExt,
	}
}
