// Package classloader loads class descriptors from exported classes directories.
package classloader

import (
	"errors"
	"os"
	"slices"
	"sync"

	"go.trai.ch/accessors/internal/adapters/classfile"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.ClassLoader over classes directories on disk.
// Directories are searched newest export first, so a regenerated class shadows its older version.
type Loader struct {
	mu   sync.RWMutex
	dirs []string
}

// New creates a Loader with an empty classpath.
func New() *Loader {
	return &Loader{}
}

// Export appends classes directories to the classpath.
// A directory exported again moves to the newest position, so it shadows whatever was exported in between.
func (l *Loader) Export(classpath []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, dir := range classpath {
		l.dirs = slices.DeleteFunc(l.dirs, func(d string) bool { return d == dir })
		l.dirs = append(l.dirs, dir)
	}
}

// Classpath returns the exported directories in export order.
func (l *Loader) Classpath() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.dirs)
}

// LoadClass loads a class by name.
func (l *Loader) LoadClass(name string) (*domain.Class, error) {
	dirs := l.Classpath()
	for _, dir := range slices.Backward(dirs) {
		c, err := classfile.Read(classfile.Path(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(err, "class", name)
		}
		if c.Name != name {
			return nil, zerr.With(zerr.Wrap(domain.ErrClassReadFailed, "class descriptor names "+c.Name), "class", name)
		}
		return c, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "class "+name), "classpath_entries", len(dirs))
}
