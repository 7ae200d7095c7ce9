package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.trai.ch/accessors/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes the environment variables read by the settings loader.
const EnvPrefix = "ACCESSORS_"

// settingsSection is the key of the settings block in accessors.yaml.
const settingsSection = "settings"

// flagKeys maps command line flags to settings keys.
var flagKeys = map[string]string{
	"cache-dir":          "cacheDir",
	"workers":            "workers",
	"log-format":         "logFormat",
	"projects-extension": "projectsExtension",
	"project-accessors":  "projectAccessors",
}

// SettingsLoader layers defaults, the settings block of accessors.yaml, ACCESSORS_* environment
// variables and command line flags, in increasing precedence.
type SettingsLoader struct{}

// NewSettingsLoader creates a new SettingsLoader.
func NewSettingsLoader() *SettingsLoader {
	return &SettingsLoader{}
}

// Load resolves the settings for a run started in cwd. flags may be nil.
func (l *SettingsLoader) Load(cwd string, flags *pflag.FlagSet) (domain.Settings, error) {
	k := koanf.New(".")
	defaults := domain.DefaultSettings()

	if err := k.Load(confmap.Provider(map[string]any{
		"cacheDir":          defaults.CacheDir,
		"projectsExtension": defaults.ProjectsExtension,
		"workers":           defaults.Workers,
		"logFormat":         string(defaults.LogFormat),
		"projectAccessors":  defaults.ProjectAccessors,
	}, "."), nil); err != nil {
		return domain.Settings{}, loadFailed("defaults", err)
	}

	baseDir := cwd
	if path, err := FindConfig(cwd); err == nil {
		baseDir = filepath.Dir(path)
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(path), yaml.Parser()); err != nil {
			return domain.Settings{}, zerr.With(loadFailed("file", err), "path", path)
		}
		if err := k.Merge(fk.Cut(settingsSection)); err != nil {
			return domain.Settings{}, zerr.With(loadFailed("file", err), "path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return domain.Settings{}, loadFailed("env", err)
	}

	flagCacheDir := ""
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			if key == "cacheDir" {
				flagCacheDir = f.Value.String()
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return domain.Settings{}, loadFailed("flags", err)
		}
	}

	var s domain.Settings
	if err := k.Unmarshal("", &s); err != nil {
		return domain.Settings{}, loadFailed("decode", err)
	}

	// Flag paths are relative to the working directory, everything else to the model file.
	if flagCacheDir != "" && !filepath.IsAbs(s.CacheDir) {
		s.CacheDir = filepath.Join(cwd, s.CacheDir)
	} else if !filepath.IsAbs(s.CacheDir) {
		s.CacheDir = filepath.Join(baseDir, s.CacheDir)
	}

	return s, validateSettings(s)
}

func validateSettings(s domain.Settings) error {
	if s.Workers < 1 {
		return zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, "workers must be at least 1"), "workers", s.Workers)
	}
	switch s.LogFormat {
	case domain.LogFormatText, domain.LogFormatJSON:
	default:
		return zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, "unknown log format"), "log_format", string(s.LogFormat))
	}
	if !domain.AliasPattern.MatchString(s.ProjectsExtension) {
		return zerr.With(
			zerr.Wrap(domain.ErrSettingsLoadFailed, "invalid projects extension name"),
			"projects_extension", s.ProjectsExtension,
		)
	}
	return nil
}

// envKey maps ACCESSORS_CACHE_DIR to cacheDir.
func envKey(name string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func loadFailed(layer string, err error) error {
	return zerr.With(errors.Join(domain.ErrSettingsLoadFailed, err), "layer", layer)
}
