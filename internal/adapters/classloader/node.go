package classloader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/accessors/internal/core/ports"
)

// NodeID is the unique identifier for the class loader Graft node.
const NodeID graft.ID = "adapter.class_loader"

func init() {
	graft.Register(graft.Node[ports.ClassLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClassLoader, error) {
			return New(), nil
		},
	})
}
