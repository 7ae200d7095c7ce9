package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/accessors/internal/adapters/classloader"        //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/adapters/compiler"           //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/accessors/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the entry point needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			compiler.NodeID,
			classloader.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Telemetry: telemetry}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	models, err := graft.Dep[ports.ModelProvider](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}
	comp, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ClassLoader](ctx)
	if err != nil {
		return nil, err
	}
	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(models, settings, comp, loader, fingerprinter, telemetry, w, log), nil
}
