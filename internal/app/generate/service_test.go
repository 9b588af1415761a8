// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lootmix/lootmix/internal/discovery"
	"github.com/lootmix/lootmix/internal/issue"
	"github.com/lootmix/lootmix/internal/spoiler"
	"github.com/lootmix/lootmix/internal/testutil"
	"github.com/lootmix/lootmix/pkg/datapack"
	"github.com/lootmix/lootmix/pkg/mix"
	"github.com/lootmix/lootmix/pkg/types"
)

const tablePrefix = "data/minecraft/loot_tables/"

func newRequest(t *testing.T, seed int64, sets ...[]string) (Request, map[string]string) {
	t.Helper()
	src := filepath.Join(t.TempDir(), "loot_tables")
	files := testutil.LootTree(t, src)

	sel, err := mix.ParseSelection(sets, mix.DefaultGroups())
	require.NoError(t, err)

	return Request{
		Seed:             types.Seed(seed),
		Selection:        sel,
		SourceDir:        src,
		OutputDir:        t.TempDir(),
		CompressionLevel: -1,
	}, files
}

// tables returns the loot table records of an archive keyed by path relative
// to the loot table root.
func tables(contents map[string]string) map[string]string {
	out := make(map[string]string)
	for name, body := range contents {
		if rel, ok := strings.CutPrefix(name, tablePrefix); ok {
			out[rel] = body
		}
	}
	return out
}

func groupOf(rel string) string {
	top, _, _ := strings.Cut(rel, "/")
	return top
}

func TestGenerate_RestrictedPoolsStayWithinGroups(t *testing.T) {
	t.Parallel()

	req, files := newRequest(t, 42, []string{"blocks", "chests"})
	res, err := NewService(nil).Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "random_loot_42_bc", res.Meta.Name)
	assert.Equal(t, filepath.Join(req.OutputDir, "random_loot_42_bc.zip"), res.Path)
	assert.Equal(t, 5, res.Shuffled)
	assert.Equal(t, 4, res.Vanilla)
	assert.Equal(t, res.Shuffled+res.Vanilla+3, res.Records)

	_, contents := testutil.ReadZipFile(t, res.Path)
	got := tables(contents)
	require.Len(t, got, len(files))

	mixed := []string{"blocks", "chests"}
	for dest, body := range got {
		var source string
		for rel, content := range files {
			if content == body {
				source = rel
			}
		}
		require.NotEmpty(t, source, "record %s holds unknown content", dest)
		if slices.Contains(mixed, groupOf(dest)) {
			assert.Contains(t, mixed, groupOf(source), "record %s", dest)
		} else {
			assert.Equal(t, dest, source, "vanilla record %s must be unchanged", dest)
		}
	}

	assert.Contains(t, contents["pack.mcmeta"], "Loot Table Randomizer, Seed: 42, Folders: blocks, chests")
	assert.JSONEq(t, `{"values":["random_loot_42_bc:reset"]}`, contents["data/minecraft/tags/functions/load.json"])
	assert.Contains(t, contents, "data/random_loot_42_bc/functions/reset.mcfunction")
}

func TestGenerate_UnrestrictedSinglePool(t *testing.T) {
	t.Parallel()

	req, files := newRequest(t, 1)
	res, err := NewService(nil).Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "random_loot_1", res.Meta.Name)
	assert.Equal(t, len(files), res.Shuffled)
	assert.Zero(t, res.Vanilla)

	_, contents := testutil.ReadZipFile(t, res.Path)
	got := tables(contents)

	// Relabeling preserves the multiset of contents.
	want := make([]string, 0, len(files))
	for _, c := range files {
		want = append(want, c)
	}
	have := make([]string, 0, len(got))
	for _, c := range got {
		have = append(have, c)
	}
	assert.ElementsMatch(t, want, have)
	assert.NotContains(t, contents["pack.mcmeta"], "Folders")
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	req, _ := newRequest(t, 42, []string{"blocks", "chests"}, []string{"gameplay"})
	svc := NewService(nil)

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	firstData, err := os.ReadFile(first.Path)
	require.NoError(t, err)

	req.OutputDir = t.TempDir()
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second.Path)
	require.NoError(t, err)

	assert.Equal(t, firstData, secondData)
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestGenerate_WritesSpoilerLog(t *testing.T) {
	t.Parallel()

	req, _ := newRequest(t, 3, []string{"entities"})
	req.Spoiler = true

	res, err := NewService(nil).Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(req.OutputDir, "random_loot_3_e"+spoiler.Ext), res.SpoilerPath)

	data, err := os.ReadFile(res.SpoilerPath)
	require.NoError(t, err)

	var doc spoiler.Log
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "random_loot_3_e", doc.Datapack)
	assert.Equal(t, int64(3), doc.Seed)
	assert.Equal(t, res.Digest.String(), doc.Digest)
	require.Len(t, doc.Pools, 1)
	assert.Equal(t, "entities", doc.Pools[0].Name)
	assert.Len(t, doc.Pools[0].Mappings, res.Shuffled)
	assert.Len(t, doc.Vanilla, res.Vanilla)
}

func TestGenerate_UnreadableSourceWritesNothing(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}

	req, _ := newRequest(t, 42)
	broken := filepath.Join(req.SourceDir, "blocks", "missing.json")
	require.NoError(t, os.Symlink(filepath.Join(req.SourceDir, "nowhere.json"), broken))

	_, err := NewService(nil).Generate(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, datapack.ErrSourceUnreadable)

	var ae *issue.ActionableError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, broken, ae.Resource)

	entries, err := os.ReadDir(req.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_MissingSource(t *testing.T) {
	t.Parallel()

	req, _ := newRequest(t, 42)
	req.SourceDir = filepath.Join(t.TempDir(), "absent")

	_, err := NewService(nil).Generate(context.Background(), req)
	assert.ErrorIs(t, err, discovery.ErrRootNotFound)
}

func TestGenerate_MissingOutputDirectory(t *testing.T) {
	t.Parallel()

	req, _ := newRequest(t, 42)
	req.OutputDir = filepath.Join(t.TempDir(), "absent")

	_, err := NewService(nil).Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutputWrite)
}

func TestGenerate_CanceledContext(t *testing.T) {
	t.Parallel()

	req, _ := newRequest(t, 42)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(nil).Generate(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(req.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlan(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	testutil.LootTree(t, src)
	tree, err := discovery.Discover(context.Background(), src, mix.DefaultGroups(), discovery.Options{})
	require.NoError(t, err)

	t.Run("unrestricted", func(t *testing.T) {
		t.Parallel()

		pools, vanilla := Plan(tree, mix.All(mix.DefaultGroups()))
		require.Len(t, pools, 1)
		assert.Equal(t, "all", pools[0].Name)
		assert.Len(t, pools[0].Files, tree.Count())
		assert.Empty(t, vanilla)
	})

	t.Run("restricted", func(t *testing.T) {
		t.Parallel()

		sel, err := mix.ParseSelection([][]string{{"gameplay", "blocks"}, {"entities"}}, mix.DefaultGroups())
		require.NoError(t, err)

		pools, vanilla := Plan(tree, sel)
		require.Len(t, pools, 2)
		assert.Equal(t, "gameplay,blocks", pools[0].Name)
		assert.Equal(t, append(tree.Files("gameplay"), tree.Files("blocks")...), pools[0].Files)
		assert.Equal(t, "entities", pools[1].Name)
		assert.Equal(t, tree.Files("chests"), vanilla)
	})
}
