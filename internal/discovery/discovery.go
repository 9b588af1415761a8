// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lootmix/lootmix/internal/issue"
	"github.com/lootmix/lootmix/pkg/mix"
)

// ErrRootNotFound is wrapped when the tree root is missing or not a directory.
var ErrRootNotFound = errors.New("loot table directory not found")

type (
	// Options tunes a walk.
	Options struct {
		// Exclude are doublestar patterns matched against slash-separated
		// paths relative to the root. Matching directories are not entered.
		Exclude []string
	}

	// Tree is the read-only result of a walk.
	Tree struct {
		root        string
		groups      []mix.Group
		files       map[mix.Group][]string
		diagnostics []Diagnostic
	}
)

// Discover walks root and assigns every file to the group named by its
// top-level directory. Paths in the result are slash-separated and relative
// to root.
func Discover(ctx context.Context, root string, groups []mix.Group, opts Options) (*Tree, error) {
	for _, pat := range opts.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pat)
		}
	}

	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", root)
	}
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read loot tables").
			WithResource(root).
			WithSuggestion("Run lootmix from the directory that contains loot_tables").
			WithSuggestion("Or pass the tree explicitly with --source").
			Wrap(errors.Join(ErrRootNotFound, err)).
			BuildError()
	}

	t := &Tree{
		root:   root,
		groups: slices.Clone(groups),
		files:  make(map[mix.Group][]string, len(groups)),
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if excluded(opts.Exclude, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		top, rest, nested := strings.Cut(rel, "/")
		if d.IsDir() {
			if !nested && !slices.Contains(t.groups, mix.Group(top)) {
				t.diagnostics = append(t.diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeUnknownGroup,
					Message:  fmt.Sprintf("directory %q is not a known group and is left out of the datapack", top),
					Path:     rel,
				})
				return filepath.SkipDir
			}
			return nil
		}

		if !nested || rest == "" {
			t.diagnostics = append(t.diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeUngroupedFile,
				Message:  fmt.Sprintf("file %q is not inside a group directory and is left out of the datapack", rel),
				Path:     rel,
			})
			return nil
		}

		g := mix.Group(top)
		t.files[g] = append(t.files[g], rel)
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, issue.WrapWithContext(walkErr, "read loot tables", root)
	}

	for _, g := range t.groups {
		if len(t.files[g]) == 0 {
			t.diagnostics = append(t.diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeEmptyGroup,
				Message:  fmt.Sprintf("group %q has no loot tables", g),
				Path:     g.String(),
			})
		}
	}

	return t, nil
}

func excluded(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if matched, err := doublestar.Match(pat, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// Root returns the walked directory.
func (t *Tree) Root() string { return t.root }

// FS returns the tree as a filesystem rooted at Root, suitable for reading
// the discovered paths.
func (t *Tree) FS() fs.FS { return os.DirFS(t.root) }

// Groups returns the known groups in enumeration order.
func (t *Tree) Groups() []mix.Group { return slices.Clone(t.groups) }

// Files returns the paths of group g in walk order.
func (t *Tree) Files(g mix.Group) []string { return slices.Clone(t.files[g]) }

// FilesOf concatenates the paths of groups in the given order.
func (t *Tree) FilesOf(groups []mix.Group) []string {
	var out []string
	for _, g := range groups {
		out = append(out, t.files[g]...)
	}
	return out
}

// Count returns the number of discovered tables across all groups.
func (t *Tree) Count() int {
	n := 0
	for _, files := range t.files {
		n += len(files)
	}
	return n
}

// Diagnostics returns the non-fatal findings of the walk.
func (t *Tree) Diagnostics() []Diagnostic { return slices.Clone(t.diagnostics) }
