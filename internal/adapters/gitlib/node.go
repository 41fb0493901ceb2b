package gitlib

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.gitlib"

func init() {
	graft.Register(graft.Node[*Extension]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Extension, error) {
			return New("")
		},
	})
}
