package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffdirs/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the file set resolver factory Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// ComparerNodeID is the unique identifier for the file comparer Graft node.
	ComparerNodeID graft.ID = "adapter.fs.comparer"
)

func init() {
	// Walker Node (Concrete implementation needed by Resolver)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSetResolverFactory]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileSetResolverFactory, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolverFactory(walker), nil
		},
	})

	graft.Register(graft.Node[ports.FileComparer]{
		ID:        ComparerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileComparer, error) {
			return NewComparer(), nil
		},
	})
}
