package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/accessors/internal/engine/generator"
	"go.trai.ch/zerr"
)

// isPublished reports whether dir holds a complete workspace.
// workspace.json is the last file written before publishing, so its presence marks completeness.
func isPublished(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.WorkspaceMetadataFile))
	return err == nil && info.Mode().IsRegular()
}

// ReadMetadata loads the metadata of a published workspace.
func ReadMetadata(ws domain.Workspace) (domain.WorkspaceMetadata, error) {
	path := filepath.Join(ws.Dir, domain.WorkspaceMetadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.WorkspaceMetadata{}, zerr.With(errors.Join(domain.ErrWorkspaceReadFailed, err), "file", path)
	}
	var meta domain.WorkspaceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.WorkspaceMetadata{}, zerr.With(errors.Join(domain.ErrWorkspaceReadFailed, err), "file", path)
	}
	return meta, nil
}

// writeMetadata records what a staged workspace contains. It holds no absolute paths or timestamps,
// so workspaces of equal identity are byte-identical wherever they live.
func writeMetadata(ws domain.Workspace, req domain.GenerationRequest, files []domain.GeneratedFile) error {
	sources := make([]string, 0, len(files))
	for _, f := range files {
		sources = append(sources, f.FileName)
	}
	slices.Sort(sources)

	entries, err := os.ReadDir(ws.ClassesDir)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrWorkspaceCreateFailed, err), "dir", ws.ClassesDir)
	}
	classes := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), domain.ClassFileExt) {
			classes = append(classes, e.Name())
		}
	}
	slices.Sort(classes)

	data, err := json.MarshalIndent(domain.WorkspaceMetadata{
		Identity:         ws.Identity.String(),
		Kind:             req.Kind(),
		Label:            req.Label(),
		GeneratorVersion: generator.Version,
		Sources:          sources,
		Classes:          classes,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal workspace metadata")
	}
	return writeFileAtomic(filepath.Join(ws.Dir, domain.WorkspaceMetadataFile), append(data, '\n'))
}

// writeFileAtomic writes data to path through a temporary file in the same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set file permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}
	return nil
}

// InstallClasspath materializes the generator classpath in dir and returns the classpath entries.
// Unchanged files are left alone and files that are no longer part of the classpath are removed,
// so the directory fingerprint only moves when the classpath itself does.
func InstallClasspath(dir string, files ...domain.GeneratedFile) ([]string, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create classpath"), "dir", dir)
	}

	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.FileName] = true
		path := filepath.Join(dir, f.FileName)
		if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, f.Content) {
			continue
		}
		if err := writeFileAtomic(path, f.Content); err != nil {
			return nil, zerr.With(err, "file", path)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read classpath"), "dir", dir)
	}
	for _, e := range entries {
		if e.IsDir() || keep[e.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to remove stale classpath file"), "file", e.Name())
		}
	}
	return []string{dir}, nil
}
