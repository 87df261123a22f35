package dispatcher

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(executor, os.Stdout, os.Stderr), nil
		},
	})
}
