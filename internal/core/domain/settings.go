package domain

import (
	"path/filepath"
	"runtime"
)

// LogFormat selects the log output format.
type LogFormat string

const (
	// LogFormatText renders human readable logs.
	LogFormatText LogFormat = "text"
	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON LogFormat = "json"
)

// Settings are the runtime settings of a run.
type Settings struct {
	// CacheDir is the state directory; workspaces and the generator classpath live below it.
	CacheDir string `koanf:"cacheDir"`
	// ProjectsExtension is the logical name the root project accessor is resolved under.
	ProjectsExtension string `koanf:"projectsExtension"`
	// Workers bounds the number of requests executed in parallel.
	Workers   int       `koanf:"workers"`
	LogFormat LogFormat `koanf:"logFormat"`
	// ProjectAccessors enables type-safe project accessors.
	ProjectAccessors bool `koanf:"projectAccessors"`
}

// DefaultSettings returns the settings used when no layer overrides them.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:          DefaultStatePath(),
		ProjectsExtension: DefaultProjectsExtension,
		Workers:           runtime.NumCPU(),
		LogFormat:         LogFormatText,
		ProjectAccessors:  true,
	}
}

// WorkspacesDir returns the workspace store below CacheDir.
func (s Settings) WorkspacesDir() string {
	return filepath.Join(s.CacheDir, WorkspacesDirName)
}

// ClasspathDir returns the generator classpath directory below CacheDir.
func (s Settings) ClasspathDir() string {
	return filepath.Join(s.CacheDir, ClasspathDirName)
}
