package ember

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/shell"
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "adapter.generator"

func init() {
	graft.Register(graft.Node[ports.Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Generator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(executor), nil
		},
	})
}
