package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
)

// Verifier checks the integrity of fetched artifacts
type Verifier interface {
	Verify(path string, expectedSHA256 string) error
}

type checksumVerifier struct {
	fs fs.FS
}

func NewVerifier(filesystem fs.FS) Verifier {
	return &checksumVerifier{fs: filesystem}
}

func (v *checksumVerifier) Verify(path string, expectedSHA256 string) error {
	actual, err := v.sum(path)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actual, strings.TrimSpace(expectedSHA256)) {
		return fmt.Errorf("checksum mismatch for %q: expected %s, got %s", path, expectedSHA256, actual)
	}

	return nil
}

func (v *checksumVerifier) sum(path string) (string, error) {
	f, err := v.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %q: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
