package ingest

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// fingerprintFile streams the file through xxh3 and returns the 64-bit hash
// as a fixed-width hex string. Fingerprints identify exactly which input
// files a store was built from; they are logged and returned in the Summary.
func fingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
