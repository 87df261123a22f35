package scaffold

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/cas"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/ember"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/overlay" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/pnpm"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/core/ports"
)

// NodeID is the unique identifier for the scaffold builder Graft node.
const NodeID graft.ID = "engine.scaffold"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ember.NodeID,
			pnpm.NodeID,
			overlay.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			generator, err := graft.Dep[ports.Generator](ctx)
			if err != nil {
				return nil, err
			}

			packages, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			customizer, err := graft.Dep[ports.Customizer](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(generator, packages, customizer, hasher, store, log), nil
		},
	})
}
