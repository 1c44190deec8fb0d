package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// keyVersion changes whenever the cached result layout changes so that old
// entries stop matching.
const keyVersion = "bisko-result/1"

// Key derives the cache key of an input document computed against the
// reference tables at refPaths. Empty paths are skipped; the table contents,
// not their names, enter the digest.
func Key(input []byte, refPaths ...string) (string, error) {
	h := sha256.New()
	_, _ = io.WriteString(h, keyVersion)
	writeChunk(h, input)

	for _, path := range refPaths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("hashing reference table: %w", err)
		}
		writeChunk(h, data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// writeChunk length-prefixes data so that chunk boundaries matter.
func writeChunk(w io.Writer, data []byte) {
	_, _ = fmt.Fprintf(w, "\x00%d\x00", len(data))
	_, _ = w.Write(data)
}
