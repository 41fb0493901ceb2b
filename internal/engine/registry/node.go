package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/gitlib"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/localfs"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/maven"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/project"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/core/domain"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			maven.NodeID,
			localfs.NodeID,
			localfs.ReaderNodeID,
			gitlib.NodeID,
			project.NodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			mvn, err := graft.Dep[*maven.Extension](ctx)
			if err != nil {
				return nil, err
			}

			local, err := graft.Dep[*localfs.Extension](ctx)
			if err != nil {
				return nil, err
			}

			static, err := graft.Dep[*localfs.StaticReader](ctx)
			if err != nil {
				return nil, err
			}

			git, err := graft.Dep[*gitlib.Extension](ctx)
			if err != nil {
				return nil, err
			}

			proj, err := graft.Dep[*project.Reader](ctx)
			if err != nil {
				return nil, err
			}

			r := New()
			r.RegisterProcurer(domain.ProcurerMvn, mvn)
			r.RegisterProcurer(domain.ProcurerLocal, local)
			r.RegisterProcurer(domain.ProcurerGit, git)
			r.RegisterManifest(domain.ManifestPom, mvn)
			r.RegisterManifest(domain.ManifestLode, proj)
			r.RegisterManifest(domain.ManifestJar, static)
			r.RegisterManifest(domain.ManifestNone, static)
			return r, nil
		},
	})
}
