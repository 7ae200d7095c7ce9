package ports

import (
	"github.com/spf13/pflag"
	"go.trai.ch/accessors/internal/core/domain"
)

// ModelProvider loads the declarative catalog and project model.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ModelProvider interface {
	// Load finds the model file starting at cwd and walking up, and returns the parsed model.
	Load(cwd string) (*domain.Model, error)
}

// SettingsLoader loads the layered runtime settings.
type SettingsLoader interface {
	// Load merges defaults, the settings section of the model file found from cwd,
	// the environment and the changed flags of flags, in that order. flags may be nil.
	Load(cwd string, flags *pflag.FlagSet) (domain.Settings, error)
}
