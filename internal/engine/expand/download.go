package expand

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Download resolves every selected coordinate in the lib map to its local
// filesystem paths, fetching concurrently. The first failure cancels the
// remaining fetches and no partial result is reported. Coordinates are
// mutated in place with their resolved paths.
func Download(ctx context.Context, lm domain.LibMap, reg *registry.Registry, cfg *domain.Manifest, threads int, tel ports.Telemetry) error {
	g, ctx := errgroup.WithContext(ctx)
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	g.SetLimit(threads)

	for lib, coord := range lm {
		g.Go(func() error {
			reader, err := reg.Manifest(coord.Manifest)
			if err != nil {
				return downloadErr(err, lib)
			}

			var vertex ports.Vertex
			vctx := ctx
			if tel != nil {
				vctx, vertex = tel.Record(ctx, fmt.Sprintf("download %s %s", lib, reg.CoordSummary(lib, coord)))
			}

			paths, err := reader.CoordPaths(vctx, lib, coord, cfg)
			if vertex != nil {
				vertex.Complete(err)
			}
			if err != nil {
				return downloadErr(err, lib)
			}
			coord.Paths = paths
			return nil
		})
	}

	return g.Wait()
}

func downloadErr(err error, lib domain.Lib) error {
	return zerr.With(zerr.Wrap(err, "error downloading dependency"), "lib", lib.String())
}
