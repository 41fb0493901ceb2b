package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/config"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[*Reader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Reader, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(loader), nil
		},
	})
}
