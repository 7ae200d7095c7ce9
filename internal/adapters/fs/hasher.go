package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher fingerprints classpath entries with xxhash.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint hashes the files of every classpath entry in order.
// Files are identified by their path relative to the entry, so moving the classpath keeps its fingerprint.
func (h *Hasher) Fingerprint(classpath []string) (string, error) {
	hasher := xxhash.New()

	for i, entry := range classpath {
		if err := binary.Write(hasher, binary.LittleEndian, uint64(i)); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
		if err := h.hashEntry(entry, hasher); err != nil {
			return "", zerr.With(errors.Join(domain.ErrClasspathFingerprintFailed, err), "entry", entry)
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashEntry(entry string, mainHasher io.Writer) error {
	info, err := os.Stat(entry)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", entry)
	}

	if !info.IsDir() {
		return h.hashFile(filepath.Base(entry), entry, mainHasher)
	}
	for path := range h.walker.WalkFiles(entry, nil) {
		rel, err := filepath.Rel(entry, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		if err := h.hashFile(filepath.ToSlash(rel), path, mainHasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(name, path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(name))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
