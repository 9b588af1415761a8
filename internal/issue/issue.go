// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	InvalidSeedId
	UnknownGroupId
	DuplicateGroupId
	SourceTreeNotFoundId
	SourceUnreadableId
	OutputWriteFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the Markdown guidance with the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Check the file for CUE syntax errors
- Show the resolved configuration:
~~~
$ lootmix config show
~~~
- Recreate a default configuration:
~~~
$ lootmix config init
~~~`,
	}

	invalidSeedIssue = &Issue{
		id: InvalidSeedId,
		mdMsg: `
# Invalid seed!

The seed must be a whole number between -9223372036854775808 and 9223372036854775807.

## Things you can try:
~~~
$ lootmix --seed 42
~~~
Leave out --seed to have one generated for you. It is printed so you can share it.`,
	}

	unknownGroupIssue = &Issue{
		id: UnknownGroupId,
		mdMsg: `
# Unknown loot table group!

--mix only accepts the group folders of the loot table tree.

## Things you can try:
- List the groups and how many tables each holds:
~~~
$ lootmix groups
~~~
- Separate the groups of one pool with commas, repeat --mix for another pool:
~~~
$ lootmix --mix blocks,chests --mix entities
~~~`,
	}

	duplicateGroupIssue = &Issue{
		id: DuplicateGroupId,
		mdMsg: `
# Group listed twice!

Each group can belong to at most one --mix pool, and only once.

## Things you can try:
- Remove the repeated group name from your --mix arguments`,
	}

	sourceTreeNotFoundIssue = &Issue{
		id: SourceTreeNotFoundId,
		mdMsg: `
# Loot tables not found!

lootmix reads the vanilla loot tables from a directory (default: ./loot_tables)
with one folder per group.

## Things you can try:
- Extract data/minecraft/loot_tables from the game jar into the current directory
- Point lootmix at another copy:
~~~
$ lootmix --source /path/to/loot_tables
~~~`,
	}

	sourceUnreadableIssue = &Issue{
		id: SourceUnreadableId,
		mdMsg: `
# A loot table could not be read!

The datapack was not written. Nothing was changed on disk.

## Things you can try:
- Check the file permissions of the path shown above
- Make sure the tree is not being modified while lootmix runs`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write the datapack!

## Things you can try:
- Check that the output directory exists and is writable
- Choose another directory:
~~~
$ lootmix --output /path/to/datapacks
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		invalidSeedIssue.Id():        invalidSeedIssue,
		unknownGroupIssue.Id():       unknownGroupIssue,
		duplicateGroupIssue.Id():     duplicateGroupIssue,
		sourceTreeNotFoundIssue.Id(): sourceTreeNotFoundIssue,
		sourceUnreadableIssue.Id():   sourceUnreadableIssue,
		outputWriteFailedIssue.Id():  outputWriteFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
