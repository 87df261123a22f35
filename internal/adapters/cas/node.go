package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the cache info store Graft node.
const NodeID graft.ID = "adapter.cache_info_store"

func init() {
	graft.Register(graft.Node[ports.CacheInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheInfoStore, error) {
			return NewStore(), nil
		},
	})
}
