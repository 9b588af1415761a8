// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lootmix/lootmix/internal/config"
	"github.com/lootmix/lootmix/internal/issue"
	"github.com/lootmix/lootmix/internal/testutil"
	"github.com/lootmix/lootmix/pkg/mix"
	"github.com/lootmix/lootmix/pkg/types"
)

// newTreeApp returns an App using the real generator on a fresh loot table
// tree, and the output directory.
func newTreeApp(t *testing.T) (*App, string, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	src := filepath.Join(t.TempDir(), "loot_tables")
	testutil.LootTree(t, src)
	out := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.SourceDir = src
	cfg.OutputDir = out

	var stdout, stderr bytes.Buffer
	app, err := NewApp(Dependencies{
		Config: staticConfig{cfg: cfg},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	return app, out, &stdout, &stderr
}

func outputFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunGenerate_WritesDatapack(t *testing.T) {
	t.Parallel()

	app, out, stdout, _ := newTreeApp(t)
	if err := execute(app, "--seed", "42", "--mix", "blocks,chests"); err != nil {
		t.Fatalf("execute() failed: %v", err)
	}

	path := filepath.Join(out, "random_loot_42_bc.zip")
	names, contents := testutil.ReadZipFile(t, path)
	if len(names) != 9+3 {
		t.Errorf("archive has %d records, want %d", len(names), 12)
	}
	if !strings.Contains(contents["pack.mcmeta"], "Seed: 42, Folders: blocks, chests") {
		t.Errorf("pack.mcmeta = %s", contents["pack.mcmeta"])
	}

	got := stdout.String()
	for _, want := range []string{"42", "random_loot_42_bc.zip", "5 shuffled, 4 vanilla, 12 records", "sha256:"} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "(random)") {
		t.Error("an explicit seed must not be reported as random")
	}
}

func TestRunGenerate_SameSeedSameArchive(t *testing.T) {
	t.Parallel()

	app, out, _, _ := newTreeApp(t)
	path := filepath.Join(out, "random_loot_9.zip")

	if err := execute(app, "-s", "9"); err != nil {
		t.Fatalf("first execute() failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	if err := execute(app, "-s", "9"); err != nil {
		t.Fatalf("second execute() failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("archives differ for the same seed")
	}
}

func TestRunGenerate_DrawsAndEchoesSeed(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{}
	app, stdout, _ := newTestApp(t, gen)
	if err := execute(app); err != nil {
		t.Fatalf("execute() failed: %v", err)
	}

	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if !gen.req.Selection.All() {
		t.Errorf("selection = %s, want all", gen.req.Selection)
	}
	if !strings.Contains(stdout.String(), gen.req.Seed.String()) || !strings.Contains(stdout.String(), "(random)") {
		t.Errorf("stdout does not echo the drawn seed %d:\n%s", gen.req.Seed, stdout.String())
	}
}

func TestRunGenerate_WritesSpoiler(t *testing.T) {
	t.Parallel()

	app, out, stdout, _ := newTreeApp(t)
	if err := execute(app, "--seed", "5", "--mix", "entities", "--spoiler"); err != nil {
		t.Fatalf("execute() failed: %v", err)
	}

	spoilerPath := filepath.Join(out, "random_loot_5_e.spoiler.yaml")
	if _, err := os.Stat(spoilerPath); err != nil {
		t.Fatalf("spoiler log not written: %v", err)
	}
	if !strings.Contains(stdout.String(), spoilerPath) {
		t.Errorf("stdout does not name the spoiler log:\n%s", stdout.String())
	}
}

func TestRunGenerate_RejectsBadInputBeforeGenerating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantErr   error
		wantIssue issue.Id
	}{
		{
			name:      "unknown group",
			args:      []string{"--seed", "1", "--mix", "foo"},
			wantErr:   mix.ErrUnknownGroup,
			wantIssue: issue.UnknownGroupId,
		},
		{
			name:      "duplicate within a set",
			args:      []string{"--seed", "1", "--mix", "blocks,blocks"},
			wantErr:   mix.ErrDuplicateGroup,
			wantIssue: issue.DuplicateGroupId,
		},
		{
			name:      "duplicate across sets",
			args:      []string{"--mix", "blocks", "--mix", "chests,blocks"},
			wantErr:   mix.ErrDuplicateGroup,
			wantIssue: issue.DuplicateGroupId,
		},
		{
			name:      "bad seed",
			args:      []string{"--seed", "abc", "--mix", "blocks"},
			wantErr:   types.ErrInvalidSeed,
			wantIssue: issue.InvalidSeedId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &recordingGenerator{}
			app, stdout, _ := newTestApp(t, gen)

			err := execute(app, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("execute() error = %v, want %v", err, tt.wantErr)
			}

			var exitErr *ExitError
			if !errors.As(err, &exitErr) || exitErr.Code != types.ExitFailure {
				t.Errorf("expected *ExitError with code %d, got %v", types.ExitFailure, err)
			}
			var svcErr *ServiceError
			if !errors.As(err, &svcErr) || svcErr.IssueID != tt.wantIssue {
				t.Errorf("expected *ServiceError with issue %d, got %v", tt.wantIssue, err)
			}
			if gen.calls != 0 {
				t.Errorf("generator called %d times, want 0", gen.calls)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout should be empty, got %q", stdout.String())
			}
		})
	}
}

func TestRunGenerate_UnknownGroupWritesNoArchive(t *testing.T) {
	t.Parallel()

	app, out, _, _ := newTreeApp(t)
	if err := execute(app, "--seed", "42", "--mix", "foo"); err == nil {
		t.Fatal("expected an error for --mix foo")
	}
	if files := outputFiles(t, out); len(files) != 0 {
		t.Errorf("output directory should be empty, got %v", files)
	}
}

func TestRunGenerate_MissingSourceTree(t *testing.T) {
	t.Parallel()

	app, out, _, _ := newTreeApp(t)
	err := execute(app, "--seed", "1", "--source", filepath.Join(out, "nothing-here"))

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID != issue.SourceTreeNotFoundId {
		t.Fatalf("expected *ServiceError with issue %d, got %v", issue.SourceTreeNotFoundId, err)
	}
	if files := outputFiles(t, out); len(files) != 0 {
		t.Errorf("output directory should be empty, got %v", files)
	}
}

func TestRunGenerate_OutputFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{}
	app, _, _ := newTestApp(t, gen)
	if err := execute(app, "--seed", "3", "-o", "elsewhere", "--source", "tables"); err != nil {
		t.Fatalf("execute() failed: %v", err)
	}

	if gen.req.OutputDir != "elsewhere" {
		t.Errorf("OutputDir = %q, want %q", gen.req.OutputDir, "elsewhere")
	}
	if gen.req.SourceDir != "tables" {
		t.Errorf("SourceDir = %q, want %q", gen.req.SourceDir, "tables")
	}
	if gen.req.Seed != 3 {
		t.Errorf("Seed = %d, want 3", gen.req.Seed)
	}
}

func TestGroupsCommand(t *testing.T) {
	t.Parallel()

	app, _, stdout, _ := newTreeApp(t)
	if err := execute(app, "groups"); err != nil {
		t.Fatalf("execute() failed: %v", err)
	}

	got := stdout.String()
	for _, g := range mix.DefaultGroups() {
		if !strings.Contains(got, g.String()) {
			t.Errorf("groups output missing %q:\n%s", g, got)
		}
	}
	if !strings.Contains(got, "9  total") {
		t.Errorf("groups output missing total:\n%s", got)
	}
}
