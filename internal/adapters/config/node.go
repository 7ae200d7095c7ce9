package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/accessors/internal/adapters/logger"
	"go.trai.ch/accessors/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the model provider Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the settings loader Graft node.
	SettingsNodeID graft.ID = "adapter.settings_loader"
)

func init() {
	graft.Register(graft.Node[ports.ModelProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ModelProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewSettingsLoader(), nil
		},
	})
}
