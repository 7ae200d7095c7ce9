package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/accessors/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Compiler, error) {
			return New(), nil
		},
	})
}
