package overlay

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/fs"
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the customizer Graft node.
const NodeID graft.ID = "adapter.customizer"

func init() {
	graft.Register(graft.Node[ports.Customizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.Customizer, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewCustomizer(walker), nil
		},
	})
}
