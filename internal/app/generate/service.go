// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/opencontainers/go-digest"

	"github.com/lootmix/lootmix/internal/discovery"
	"github.com/lootmix/lootmix/internal/issue"
	"github.com/lootmix/lootmix/internal/spoiler"
	"github.com/lootmix/lootmix/pkg/datapack"
	"github.com/lootmix/lootmix/pkg/mix"
	"github.com/lootmix/lootmix/pkg/shuffle"
	"github.com/lootmix/lootmix/pkg/types"
)

// ErrOutputWrite is wrapped when the archive or spoiler log cannot be written.
var ErrOutputWrite = errors.New("datapack output not written")

type (
	// Request captures every generation input as an immutable value.
	Request struct {
		// Seed drives the permutation.
		Seed types.Seed
		// Selection is the validated --mix choice.
		Selection mix.Selection
		// SourceDir is the loot table tree.
		SourceDir string
		// OutputDir receives the archive.
		OutputDir string
		// Exclude are doublestar patterns of ignored files.
		Exclude []string
		// CompressionLevel is the deflate level of the entries.
		CompressionLevel int
		// Spoiler also writes the spoiler log next to the archive.
		Spoiler bool
	}

	// Result describes a written datapack.
	Result struct {
		Meta datapack.Meta
		// Path is the archive location.
		Path string
		// Digest is the sha256 digest of the archive.
		Digest digest.Digest
		// Shuffled and Vanilla count the relabeled and copied tables.
		Shuffled int
		Vanilla  int
		// Records is the number of archive entries.
		Records int
		// Fingerprint identifies the source tree content.
		Fingerprint string
		// SpoilerPath is set when a spoiler log was written.
		SpoilerPath string
		// Diagnostics are the non-fatal discovery findings.
		Diagnostics []discovery.Diagnostic
	}

	// Service generates datapacks.
	Service struct {
		logger *log.Logger
	}
)

// NewService creates a Service logging to logger. A nil logger discards output.
func NewService(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{logger: logger}
}

// Generate runs the whole pipeline. On any error no file is left at the
// archive path.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	meta := mix.NewMeta(req.Seed, req.Selection)
	s.logger.Info("Generating datapack...", "name", meta.Name, "seed", req.Seed, "mix", req.Selection)

	tree, err := discovery.Discover(ctx, req.SourceDir, req.Selection.Known(), discovery.Options{Exclude: req.Exclude})
	if err != nil {
		return Result{}, err
	}
	for _, d := range tree.Diagnostics() {
		s.logger.Debug(d.Message, "code", d.Code)
	}

	pools, vanilla := Plan(tree, req.Selection)
	for _, p := range pools {
		s.logger.Debug("shuffle pool", "pool", p.Name, "tables", len(p.Files))
	}

	perm := shuffle.Permute(req.Seed.Rand(), pools)
	mappings := perm.Pairs()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	archive, err := datapack.Build(tree.FS(), mappings, vanilla, meta, datapack.WithCompressionLevel(req.CompressionLevel))
	if err != nil {
		var srcErr *datapack.SourceError
		if errors.As(err, &srcErr) {
			return Result{}, issue.NewErrorContext().
				WithOperation("read loot table").
				WithResource(filepath.Join(req.SourceDir, filepath.FromSlash(srcErr.Path))).
				WithSuggestion("No datapack was written").
				Wrap(err).
				BuildError()
		}
		return Result{}, fmt.Errorf("build datapack: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{
		Meta:        meta,
		Path:        filepath.Join(req.OutputDir, meta.Filename),
		Digest:      archive.Digest(),
		Shuffled:    len(mappings),
		Vanilla:     len(vanilla),
		Records:     len(archive.Entries),
		Diagnostics: tree.Diagnostics(),
	}

	if err := archive.WriteFile(res.Path); err != nil {
		return Result{}, outputError(res.Path, err)
	}
	s.logger.Debug("archive written", "path", res.Path, "records", res.Records, "digest", res.Digest)

	fingerprint, err := tree.Fingerprint()
	if err != nil {
		s.logger.Warn("source fingerprint unavailable", "err", err)
	}
	res.Fingerprint = fingerprint

	if req.Spoiler {
		res.SpoilerPath = filepath.Join(req.OutputDir, meta.Name+spoiler.Ext)
		doc := &spoiler.Log{
			Datapack:    meta.Name,
			Seed:        int64(req.Seed),
			Selection:   req.Selection.String(),
			Digest:      res.Digest.String(),
			Fingerprint: res.Fingerprint,
			Pools:       spoiler.PoolsFrom(mappings),
			Vanilla:     vanilla,
		}
		data, err := doc.Marshal()
		if err != nil {
			return res, err
		}
		if err := datapack.WriteFile(res.SpoilerPath, data); err != nil {
			return res, outputError(res.SpoilerPath, err)
		}
	}

	return res, nil
}

// Plan builds the shuffle pools and the vanilla list of a tree. The
// unrestricted selection yields one pool named "all"; otherwise each pool is
// named after its groups and holds their files in selection order. Vanilla
// files follow the known group order.
func Plan(tree *discovery.Tree, sel mix.Selection) ([]shuffle.Pool, []string) {
	var pools []shuffle.Pool
	for _, groups := range sel.Pools() {
		name := "all"
		if !sel.All() {
			name = mix.JoinGroups(groups, ",")
		}
		pools = append(pools, shuffle.Pool{Name: name, Files: tree.FilesOf(groups)})
	}
	return pools, tree.FilesOf(sel.Vanilla())
}

func outputError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("write datapack").
		WithResource(path).
		WithSuggestion("Check that the output directory exists and is writable").
		Wrap(errors.Join(ErrOutputWrite, err)).
		BuildError()
}
