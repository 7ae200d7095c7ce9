// Package classfile encodes class descriptors for the classes directory of a workspace.
package classfile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

// Path returns the file a class is stored in below dir.
func Path(dir, className string) string {
	return filepath.Join(dir, className+domain.ClassFileExt)
}

// Write encodes c into dir.
func Write(dir string, c *domain.Class) error {
	data, err := msgpack.Marshal(c)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode class"), "class", c.Name)
	}
	path := Path(dir, c.Name)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write class"), "path", path)
	}
	return nil
}

// Read decodes the class stored at path.
// A missing file yields os.ErrNotExist; any other failure yields domain.ErrClassReadFailed.
func Read(path string) (*domain.Class, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from an exported classes directory
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(errors.Join(domain.ErrClassReadFailed, err), "path", path)
	}

	var c domain.Class
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrClassReadFailed, err), "path", path)
	}
	return &c, nil
}
