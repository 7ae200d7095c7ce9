package domain

import (
	"path/filepath"
	"slices"
)

// Workspace is a published, identity-addressed directory holding generated sources and compiled classes.
// A published workspace is never modified again.
type Workspace struct {
	Identity   Identity
	Dir        string
	SourcesDir string
	ClassesDir string
}

// NewWorkspace returns the workspace layout rooted at dir.
func NewWorkspace(id Identity, dir string) Workspace {
	return Workspace{
		Identity:   id,
		Dir:        dir,
		SourcesDir: filepath.Join(dir, SourcesDirName),
		ClassesDir: filepath.Join(dir, ClassesDirName),
	}
}

// WorkspaceMetadata is persisted as workspace.json once a workspace is complete.
type WorkspaceMetadata struct {
	Identity         string   `json:"identity"`
	Kind             string   `json:"kind"`
	Label            string   `json:"label"`
	GeneratorVersion string   `json:"generatorVersion"`
	Sources          []string `json:"sources"`
	Classes          []string `json:"classes"`
}

// GeneratedArtifactSet accumulates the source and class directories produced during one run.
// Both lists are ordered by first insertion and never hold duplicates.
// Add and Merge return new values; the receiver is left untouched.
type GeneratedArtifactSet struct {
	Sources []string
	Classes []string
}

// Add returns a set that also contains the directories of ws.
func (s GeneratedArtifactSet) Add(ws Workspace) GeneratedArtifactSet {
	return GeneratedArtifactSet{
		Sources: appendUnique(slices.Clone(s.Sources), ws.SourcesDir),
		Classes: appendUnique(slices.Clone(s.Classes), ws.ClassesDir),
	}
}

// Merge returns the union of s and other, keeping the order of s first.
func (s GeneratedArtifactSet) Merge(other GeneratedArtifactSet) GeneratedArtifactSet {
	out := GeneratedArtifactSet{
		Sources: slices.Clone(s.Sources),
		Classes: slices.Clone(s.Classes),
	}
	for _, dir := range other.Sources {
		out.Sources = appendUnique(out.Sources, dir)
	}
	for _, dir := range other.Classes {
		out.Classes = appendUnique(out.Classes, dir)
	}
	return out
}

// IsEmpty reports whether the set holds no directories.
func (s GeneratedArtifactSet) IsEmpty() bool {
	return len(s.Sources) == 0 && len(s.Classes) == 0
}

func appendUnique(dirs []string, dir string) []string {
	if slices.Contains(dirs, dir) {
		return dirs
	}
	return append(dirs, dir)
}
