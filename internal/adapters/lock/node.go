package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/logger"
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the locker Graft node.
const NodeID graft.ID = "adapter.locker"

func init() {
	graft.Register(graft.Node[ports.Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Locker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocker(log), nil
		},
	})
}
