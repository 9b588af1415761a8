// SPDX-License-Identifier: MPL-2.0

package datapack

const (
	// ArchiveExt is the extension of the written datapack.
	ArchiveExt = ".zip"

	// PackFormat is the pack_format value written to pack.mcmeta.
	PackFormat = 1

	// LootTablesDir is the directory under data/minecraft/ that receives the tables.
	LootTablesDir = "loot_tables"

	// ResetFunction is the function run on load, namespaced by the pack name.
	ResetFunction = "reset"

	resetCommand = `tellraw @a ["",{"text":"Loot table randomizer by SethBling, modified by Joelius300","color":"green"}]`
)

// Meta names and describes one datapack.
type Meta struct {
	// Name is the datapack namespace, e.g. "random_loot_42_bc".
	Name string
	// Description is shown in the in-game datapack list.
	Description string
	// Filename is the archive file name, e.g. "random_loot_42_bc.zip".
	Filename string
}

// ResetID returns the namespaced identifier of the load function.
func (m Meta) ResetID() string { return m.Name + ":" + ResetFunction }
