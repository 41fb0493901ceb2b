// Package app implements the application layer for lode: the
// merge -> combine -> expand -> download -> classpath pipeline.
package app

import (
	"context"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/classpath"
	"go.trai.ch/lode/internal/engine/expand"
	"go.trai.ch/lode/internal/engine/registry"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	reg    *registry.Registry
	root   *domain.Manifest
	tel    ports.Telemetry
}

// New creates a new App instance. The root manifest is the built-in
// lowest-precedence configuration (default repositories).
func New(loader ports.ConfigLoader, reg *registry.Registry, root *domain.Manifest, tel ports.Telemetry) *App {
	return &App{
		loader: loader,
		reg:    reg,
		root:   root,
		tel:    tel,
	}
}

// Options carries the per-invocation arguments for CalcBasis.
type Options struct {
	// Aliases are combined into the effective argument maps.
	Aliases []string
	// ResolveArgs override alias-contributed resolve arguments.
	ResolveArgs *domain.ResolveArgs
	// ClasspathArgs override alias-contributed classpath arguments.
	ClasspathArgs *domain.ClasspathArgs
	// Trace records expansion decisions on the returned basis.
	Trace bool
	// Threads bounds the fetch pools; zero means available processors.
	Threads int
}

// Basis is the computed result plus the expansion trace when requested.
type Basis struct {
	*domain.Basis
	Trace *domain.Trace
}

// CalcBasis loads the project manifest from dir, merges it over the root
// manifest, combines the requested aliases, expands the dependency graph,
// downloads the selected libraries and assembles the classpath. All
// working tables live inside a per-call session scope.
func (a *App) CalcBasis(ctx context.Context, dir string, opts Options) (*Basis, error) {
	project, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	master := domain.MergeManifests(a.root, project)

	combined, err := domain.CombineAliases(master, opts.Aliases)
	if err != nil {
		return nil, err
	}

	resolveArgs, classpathArgs := a.mergeArgs(combined, opts)

	ctx = domain.WithSession(ctx, domain.NewSession())

	seeds := seedDeps(master, combined, resolveArgs)

	vctx, vertex := a.record(ctx, "resolve deps")
	vmap, trace, err := expand.New(a.reg, master).Expand(vctx, seeds, resolveArgs)
	a.complete(vertex, err)
	if err != nil {
		return nil, err
	}

	libs := domain.LibMapFrom(vmap)

	if err := expand.Download(ctx, libs, a.reg, master, resolveArgs.Threads, a.tel); err != nil {
		return nil, err
	}

	// Alias paths replace the project's own paths for classpath purposes.
	pathCfg := master
	if len(combined.Paths) > 0 {
		dup := *master
		dup.Paths = combined.Paths
		pathCfg = &dup
	}
	entries, err := classpath.Build(pathCfg, libs, classpathArgs)
	if err != nil {
		return nil, err
	}

	return &Basis{
		Basis: &domain.Basis{
			Manifest:      master,
			ResolveArgs:   resolveArgs,
			ClasspathArgs: classpathArgs,
			Libs:          libs,
			Classpath:     entries,
		},
		Trace: trace,
	}, nil
}

// CoordSummary renders a coordinate through its procurer extension, for
// tree printing.
func (a *App) CoordSummary(lib domain.Lib, coord *domain.Coord) string {
	if coord == nil {
		return ""
	}
	return a.reg.CoordSummary(lib, coord)
}

// MakeClasspath is CalcBasis projected to the joined classpath string.
func (a *App) MakeClasspath(ctx context.Context, dir string, opts Options) (string, error) {
	basis, err := a.CalcBasis(ctx, dir, opts)
	if err != nil {
		return "", err
	}
	return classpath.Join(basis.Classpath), nil
}

// mergeArgs folds alias-contributed argument maps with the explicit
// per-call arguments; explicit arguments win key-by-key.
func (a *App) mergeArgs(combined *domain.Alias, opts Options) (*domain.ResolveArgs, *domain.ClasspathArgs) {
	resolve := &domain.ResolveArgs{
		ExtraDeps:    cloneCoordMap(combined.ExtraDeps),
		OverrideDeps: cloneCoordMap(combined.OverrideDeps),
		DefaultDeps:  cloneCoordMap(combined.DefaultDeps),
		Threads:      opts.Threads,
		Trace:        opts.Trace,
	}
	if args := opts.ResolveArgs; args != nil {
		for lib, coord := range args.ExtraDeps {
			resolve.ExtraDeps = setCoord(resolve.ExtraDeps, lib, coord)
		}
		for lib, coord := range args.OverrideDeps {
			resolve.OverrideDeps = setCoord(resolve.OverrideDeps, lib, coord)
		}
		for lib, coord := range args.DefaultDeps {
			resolve.DefaultDeps = setCoord(resolve.DefaultDeps, lib, coord)
		}
		if args.Threads > 0 {
			resolve.Threads = args.Threads
		}
		resolve.Trace = resolve.Trace || args.Trace
	}

	cp := &domain.ClasspathArgs{
		ExtraPaths:         append([]string(nil), combined.ExtraPaths...),
		ClasspathOverrides: cloneStringMap(combined.ClasspathOverrides),
	}
	if args := opts.ClasspathArgs; args != nil {
		for _, p := range args.ExtraPaths {
			cp.ExtraPaths = append(cp.ExtraPaths, p)
		}
		for lib, root := range args.ClasspathOverrides {
			if cp.ClasspathOverrides == nil {
				cp.ClasspathOverrides = make(map[domain.Lib]string)
			}
			cp.ClasspathOverrides[lib] = root
		}
	}
	return resolve, cp
}

// seedDeps computes the top-level dependencies: the manifest's deps
// (replaced wholesale by an alias deps map when one was combined) plus
// any extra deps.
func seedDeps(master *domain.Manifest, combined *domain.Alias, args *domain.ResolveArgs) map[domain.Lib]*domain.Coord {
	base := master.Deps
	if len(combined.Deps) > 0 {
		base = combined.Deps
	}
	seeds := make(map[domain.Lib]*domain.Coord, len(base)+len(args.ExtraDeps))
	for lib, coord := range base {
		seeds[lib] = coord
	}
	for lib, coord := range args.ExtraDeps {
		seeds[lib] = coord
	}
	return seeds
}

func (a *App) record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	if a.tel == nil {
		return ctx, nil
	}
	return a.tel.Record(ctx, name)
}

func (a *App) complete(vertex ports.Vertex, err error) {
	if vertex != nil {
		vertex.Complete(err)
	}
}

func cloneCoordMap(m map[domain.Lib]*domain.Coord) map[domain.Lib]*domain.Coord {
	if len(m) == 0 {
		return nil
	}
	out := make(map[domain.Lib]*domain.Coord, len(m))
	for lib, coord := range m {
		out[lib] = coord
	}
	return out
}

func cloneStringMap(m map[domain.Lib]string) map[domain.Lib]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[domain.Lib]string, len(m))
	for lib, s := range m {
		out[lib] = s
	}
	return out
}

func setCoord(m map[domain.Lib]*domain.Coord, lib domain.Lib, coord *domain.Coord) map[domain.Lib]*domain.Coord {
	if m == nil {
		m = make(map[domain.Lib]*domain.Coord)
	}
	m[lib] = coord
	return m
}
