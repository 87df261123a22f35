package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/adapters/pnpm"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bottled/internal/core/ports"
)

const (
	// LinksNodeID is the unique identifier for the link reconciler Graft node.
	LinksNodeID graft.ID = "engine.reconciler.links"
	// DepsNodeID is the unique identifier for the dependency reconciler Graft node.
	DepsNodeID graft.ID = "engine.reconciler.deps"
)

func init() {
	graft.Register(graft.Node[*LinkReconciler]{
		ID:        LinksNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*LinkReconciler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinkReconciler(log), nil
		},
	})

	graft.Register(graft.Node[*DependencyReconciler]{
		ID:        DepsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ManifestNodeID, pnpm.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*DependencyReconciler, error) {
			manifests, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}

			packages, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDependencyReconciler(manifests, packages, log), nil
		},
	})
}
