package maven

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.maven"

func init() {
	graft.Register(graft.Node[*Extension]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Extension, error) {
			return New("", nil)
		},
	})
}
