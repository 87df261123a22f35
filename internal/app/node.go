package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bottled/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/bottled/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bottled/internal/adapters/lock"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bottled/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/bottled/internal/engine/dispatcher"
	"go.trai.ch/bottled/internal/engine/reconciler"
	"go.trai.ch/bottled/internal/engine/scaffold"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lock.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			scaffold.NodeID,
			reconciler.DepsNodeID,
			reconciler.LinksNodeID,
			dispatcher.NodeID,
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
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.Locker](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*scaffold.Builder](ctx)
	if err != nil {
		return nil, err
	}

	deps, err := graft.Dep[*reconciler.DependencyReconciler](ctx)
	if err != nil {
		return nil, err
	}

	links, err := graft.Dep[*reconciler.LinkReconciler](ctx)
	if err != nil {
		return nil, err
	}

	disp, err := graft.Dep[*dispatcher.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locker, store, hasher, builder, deps, links, disp, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
