// Package project reads libraries whose coordinates resolve to a nested
// lode project: their children come from the project's own manifest and
// their classpath roots are the project's source paths.
package project

import (
	"context"
	"path/filepath"
	"slices"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultPaths apply when a nested project declares no paths of its own.
var defaultPaths = []string{"src"}

// Reader implements the lode manifest kind on top of the config loader.
type Reader struct {
	loader ports.ConfigLoader
}

// NewReader creates the reader.
func NewReader(loader ports.ConfigLoader) *Reader {
	return &Reader{loader: loader}
}

// CoordDeps reads the nested project's manifest, relative to the
// coordinate's root, and returns its declared dependencies in sorted
// library order.
func (r *Reader) CoordDeps(ctx context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) ([]domain.Dep, error) {
	m, err := r.loadManifest(ctx, lib, coord)
	if err != nil {
		return nil, err
	}

	libs := make([]domain.Lib, 0, len(m.Deps))
	for l := range m.Deps {
		libs = append(libs, l)
	}
	slices.Sort(libs)

	deps := make([]domain.Dep, 0, len(libs))
	for _, l := range libs {
		child := m.Deps[l].Clone()
		// Relative local roots in a nested manifest resolve against the
		// project's own directory, not the resolver's working directory.
		if child != nil && child.Procurer == domain.ProcurerLocal && child.Root != "" && !filepath.IsAbs(child.Root) {
			child.Root = filepath.Join(coord.Root, child.Root)
		}
		deps = append(deps, domain.Dep{Lib: l, Coord: child})
	}
	return deps, nil
}

// CoordPaths returns the nested project's source paths resolved against
// its root.
func (r *Reader) CoordPaths(ctx context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) ([]string, error) {
	m, err := r.loadManifest(ctx, lib, coord)
	if err != nil {
		return nil, err
	}
	paths := m.Paths
	if len(paths) == 0 {
		paths = defaultPaths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		out = append(out, filepath.Join(coord.Root, p))
	}
	return out, nil
}

func (r *Reader) loadManifest(ctx context.Context, lib domain.Lib, coord *domain.Coord) (*domain.Manifest, error) {
	if coord.Root == "" {
		return nil, zerr.With(zerr.New("project coordinate has no root"), "lib", lib.String())
	}

	load := func() (any, error) {
		return r.loader.Load(coord.Root)
	}

	if sess := domain.SessionFrom(ctx); sess != nil {
		value, err := sess.Memoize("project:manifest:"+coord.Root, load)
		if err != nil {
			return nil, zerr.With(err, "lib", lib.String())
		}
		return value.(*domain.Manifest), nil
	}
	value, err := load()
	if err != nil {
		return nil, zerr.With(err, "lib", lib.String())
	}
	return value.(*domain.Manifest), nil
}

var _ ports.ManifestReader = (*Reader)(nil)
