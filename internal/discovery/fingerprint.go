// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io/fs"

	"github.com/zeebo/blake3"
)

// Fingerprint hashes every discovered path and its content, in group and
// walk order. Two machines that report the same fingerprint hold the same
// input, so the same seed gives them the same datapack.
func (t *Tree) Fingerprint() (string, error) {
	h := blake3.New()
	fsys := t.FS()

	var size [8]byte
	for _, g := range t.groups {
		for _, p := range t.files[g] {
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return "", fmt.Errorf("fingerprint %s: %w", p, err)
			}

			binary.LittleEndian.PutUint64(size[:], uint64(len(p)))
			_, _ = h.Write(size[:])
			_, _ = h.Write([]byte(p))
			binary.LittleEndian.PutUint64(size[:], uint64(len(data)))
			_, _ = h.Write(size[:])
			_, _ = h.Write(data)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
