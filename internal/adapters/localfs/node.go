package localfs

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	NodeID       graft.ID = "adapter.localfs"
	ReaderNodeID graft.ID = "adapter.localfs.static_reader"
)

func init() {
	graft.Register(graft.Node[*Extension]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Extension, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[*StaticReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*StaticReader, error) {
			return NewStaticReader(), nil
		},
	})
}
