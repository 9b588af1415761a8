// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/klauspost/compress/flate"
	"github.com/opencontainers/go-digest"

	"github.com/lootmix/lootmix/pkg/shuffle"
)

const (
	packMetaPath = "pack.mcmeta"
	loadTagPath  = "data/minecraft/tags/functions/load.json"
)

type (
	// Option configures Build.
	Option func(*options)

	options struct {
		level int
	}

	// Archive is a fully staged datapack.
	Archive struct {
		// Data is the complete zip file.
		Data []byte
		// Entries lists the archive paths in write order.
		Entries []string
	}

	packMeta struct {
		Pack packSection `json:"pack"`
	}

	packSection struct {
		PackFormat  int    `json:"pack_format"`
		Description string `json:"description"`
	}

	tagFile struct {
		Values []string `json:"values"`
	}
)

// WithCompressionLevel sets the deflate level, from flate.HuffmanOnly (-2)
// to flate.BestCompression (9). The default is flate.DefaultCompression.
func WithCompressionLevel(level int) Option {
	return func(o *options) { o.level = level }
}

// TablePath returns the archive path of the loot table at rel.
func TablePath(rel string) string {
	return path.Join("data", "minecraft", LootTablesDir, rel)
}

// ResetPath returns the archive path of the load function of meta.
func ResetPath(meta Meta) string {
	return path.Join("data", meta.Name, "functions", ResetFunction+".mcfunction")
}

// Build stages the datapack in memory.
//
// Every mapping stores the bytes of its Source under the table path of its
// Destination, so the destination identifier drops what the source used to.
// Every vanilla path is copied under its own table path. The pack
// descriptor, load tag and reset function are appended last. Paths are
// slash-separated and relative to src.
func Build(src fs.FS, mappings []shuffle.Mapping, vanilla []string, meta Meta, opts ...Option) (*Archive, error) {
	o := options{level: flate.DefaultCompression}
	for _, opt := range opts {
		opt(&o)
	}
	if o.level < flate.HuffmanOnly || o.level > flate.BestCompression {
		return nil, fmt.Errorf("invalid compression level %d", o.level)
	}

	b := &builder{
		seen: make(map[string]bool, len(mappings)+len(vanilla)+3),
	}
	b.zw = zip.NewWriter(&b.buf)
	b.zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, o.level)
	})

	for _, m := range mappings {
		if err := b.copyTable(src, m.Source, m.Destination); err != nil {
			return nil, err
		}
	}
	for _, p := range vanilla {
		if err := b.copyTable(src, p, p); err != nil {
			return nil, err
		}
	}

	descriptor, err := json.MarshalIndent(packMeta{Pack: packSection{
		PackFormat:  PackFormat,
		Description: meta.Description,
	}}, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode pack descriptor: %w", err)
	}
	if err := b.add(packMetaPath, descriptor); err != nil {
		return nil, err
	}

	tag, err := json.Marshal(tagFile{Values: []string{meta.ResetID()}})
	if err != nil {
		return nil, fmt.Errorf("encode load tag: %w", err)
	}
	if err := b.add(loadTagPath, tag); err != nil {
		return nil, err
	}

	if err := b.add(ResetPath(meta), []byte(resetCommand)); err != nil {
		return nil, err
	}

	if err := b.zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	return &Archive{Data: b.buf.Bytes(), Entries: b.entries}, nil
}

// Digest returns the sha256 digest of the archive bytes.
func (a *Archive) Digest() digest.Digest {
	return digest.FromBytes(a.Data)
}

type builder struct {
	buf     bytes.Buffer
	zw      *zip.Writer
	entries []string
	seen    map[string]bool
}

func (b *builder) copyTable(src fs.FS, from, to string) error {
	data, err := fs.ReadFile(src, from)
	if err != nil {
		return &SourceError{Path: from, Err: err}
	}
	return b.add(TablePath(to), data)
}

func (b *builder) add(name string, data []byte) error {
	if b.seen[name] {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}
	b.seen[name] = true

	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
	hdr.SetMode(0o644)

	w, err := b.zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write archive entry %s: %w", name, err)
	}

	b.entries = append(b.entries, name)
	return nil
}
