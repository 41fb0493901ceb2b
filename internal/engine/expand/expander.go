// Package expand implements the dependency expansion engine: a
// breadth-first traversal of the dependency graph that dispatches
// child-dependency reads to a bounded worker pool and folds the results
// into a version map under the top-wins/dominance selection policy.
package expand

import (
	"context"
	"slices"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/engine/registry"
	"go.trai.ch/zerr"
)

// maxIterations bounds pathological inputs. Selections only move to
// strictly dominant coord-ids, so real graphs terminate far below this.
const maxIterations = 100_000

// Expander drives dependency expansion against a set of registered
// procurer extensions.
type Expander struct {
	reg *registry.Registry
	cfg *domain.Manifest
}

// New creates an Expander for the given registry and merged manifest.
func New(reg *registry.Registry, cfg *domain.Manifest) *Expander {
	return &Expander{reg: reg, cfg: cfg}
}

// queueItem is one element of the expansion queue: either a concrete
// pathed dependency or a pending node whose children are still being
// fetched.
type queueItem struct {
	path    domain.DepPath
	pending *pendingNode
}

type pendingNode struct {
	fut   *Future
	ppath domain.DepPath
}

// expandState holds the driver's working tables. Only the driver
// goroutine touches them.
type expandState struct {
	q     []queueItem
	pendq []domain.DepPath
	vmap  domain.VersionMap
	excl  domain.ExclusionSet
	trace *domain.Trace
	exec  *Executor
}

// Expand computes the version map for the given seed dependencies. Seeds
// are processed in sorted library order so that expansion is
// deterministic; every per-path decision depends only on queue order, not
// on worker completion order. The optional trace records every decision.
func (e *Expander) Expand(ctx context.Context, seeds map[domain.Lib]*domain.Coord, args *domain.ResolveArgs) (domain.VersionMap, *domain.Trace, error) {
	if args == nil {
		args = &domain.ResolveArgs{}
	}

	state := &expandState{
		vmap: make(domain.VersionMap),
		excl: domain.NewExclusionSet(),
		exec: NewExecutor(ctx, args.Threads),
	}
	defer state.exec.Shutdown()
	if args.Trace {
		state.trace = &domain.Trace{}
	}

	libs := make([]domain.Lib, 0, len(seeds))
	for lib := range seeds {
		libs = append(libs, lib)
	}
	slices.Sort(libs)
	tops := make([]domain.Dep, 0, len(libs))
	for _, lib := range libs {
		tops = append(tops, domain.Dep{Lib: lib, Coord: seeds[lib].Clone()})
	}
	tops, err := e.canonicalizeDeps(ctx, tops)
	if err != nil {
		return nil, nil, err
	}
	for _, top := range tops {
		state.q = append(state.q, queueItem{path: domain.DepPath{top}})
	}

	for i := 0; ; i++ {
		if i >= maxIterations {
			return nil, nil, domain.ErrExpansionOverflow
		}
		path, ok, err := state.nextPath()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			if state.trace != nil {
				state.trace.VersionMap = state.vmap
				state.trace.Exclusions = state.excl
			}
			return state.vmap, state.trace, nil
		}
		if err := e.processPath(ctx, state, path, args); err != nil {
			return nil, nil, err
		}
	}
}

// nextPath yields the next pathed dependency to process: the scratch
// pendq drains first, then the FIFO queue. Awaiting a pending node
// refills pendq with that node's children, keeping the traversal a
// deterministic BFS over completed child lists.
func (s *expandState) nextPath() (domain.DepPath, bool, error) {
	for {
		if len(s.pendq) > 0 {
			path := s.pendq[0]
			s.pendq = s.pendq[1:]
			return path, true, nil
		}
		if len(s.q) == 0 {
			return nil, false, nil
		}
		item := s.q[0]
		s.q = s.q[1:]
		if item.pending == nil {
			return item.path, true, nil
		}
		children, err := item.pending.fut.Await()
		if err != nil {
			return nil, false, err
		}
		for _, child := range children {
			s.pendq = append(s.pendq, item.pending.ppath.Child(child))
		}
	}
}

// processPath applies the inclusion and dominance rules to one candidate
// node and, when it is included, schedules its child fetch.
func (e *Expander) processPath(ctx context.Context, state *expandState, path domain.DepPath, args *domain.ResolveArgs) error {
	leaf := path.Leaf()
	lib, coord := leaf.Lib, leaf.Coord
	parents := path.Parents()

	useCoord := coord
	override := false
	if oc := args.OverrideDeps[lib]; oc != nil {
		useCoord = oc.Clone()
		override = true
	} else if useCoord == nil {
		useCoord = args.DefaultDeps[lib].Clone()
	}
	if useCoord == nil {
		return zerr.With(domain.ErrMissingCoord, "lib", lib.String())
	}

	entry := domain.TraceEntry{
		Path:          parents,
		Lib:           lib,
		Coord:         coord,
		UseCoord:      useCoord,
		OverrideCoord: override,
	}

	include, reason := state.vmap.Include(lib, parents, state.excl)
	if !include {
		entry.Include = false
		entry.Reason = reason
		state.trace.Add(entry)
		return nil
	}

	ext, err := e.reg.Procurer(useCoord.Procurer)
	if err != nil {
		return expandErr(err, lib, parents)
	}
	info, err := ext.ManifestType(ctx, lib, useCoord, e.cfg)
	if err != nil {
		return expandErr(err, lib, parents)
	}
	useCoord = useCoord.WithManifest(info)
	entry.UseCoord = useCoord

	cid, err := ext.DepID(lib, useCoord, e.cfg)
	if err != nil {
		return expandErr(err, lib, parents)
	}
	entry.CoordID = cid

	reader, err := e.reg.Manifest(info.Kind)
	if err != nil {
		return expandErr(err, lib, parents)
	}
	fut := state.exec.Submit(func(ctx context.Context) ([]domain.Dep, error) {
		children, err := reader.CoordDeps(ctx, lib, useCoord, e.cfg)
		if err != nil {
			return nil, expandErr(err, lib, parents)
		}
		return e.canonicalizeDeps(ctx, children)
	})

	action := domain.ActionChooseVersion
	if reason == domain.ReasonTop {
		action = domain.ActionTop
	}
	selected, addReason, err := state.vmap.AddCoord(lib, cid, useCoord, parents, action, e.reg.Comparator(e.cfg))
	if err != nil {
		return expandErr(err, lib, parents)
	}
	entry.Include = selected
	entry.Reason = addReason
	state.trace.Add(entry)

	if selected {
		usePath := parents.Child(lib)
		state.excl.Add(usePath, useCoord.Exclusions)
		ppath := path[:len(path)-1].Child(domain.Dep{Lib: lib, Coord: useCoord})
		state.q = append(state.q, queueItem{pending: &pendingNode{fut: fut, ppath: ppath}})
	}
	// An omitted node's future is simply dropped; the already-launched
	// fetch is benign because a later selection change re-expands.
	return nil
}

// canonicalizeDeps normalizes freshly read child dependencies. Children
// without a coordinate are left as-is and resolved against default-deps
// when their path is processed.
func (e *Expander) canonicalizeDeps(ctx context.Context, deps []domain.Dep) ([]domain.Dep, error) {
	out := make([]domain.Dep, 0, len(deps))
	for _, dep := range deps {
		if dep.Coord == nil {
			out = append(out, dep)
			continue
		}
		ext, err := e.reg.Procurer(dep.Coord.Procurer)
		if err != nil {
			return nil, zerr.With(err, "lib", dep.Lib.String())
		}
		lib, coord, err := ext.Canonicalize(ctx, dep.Lib, dep.Coord, e.cfg)
		if err != nil {
			return nil, zerr.With(err, "lib", dep.Lib.String())
		}
		out = append(out, domain.Dep{Lib: lib, Coord: coord})
	}
	return out, nil
}

func expandErr(err error, lib domain.Lib, path domain.Path) error {
	err = zerr.With(zerr.Wrap(err, "error expanding dependency"), "lib", lib.String())
	return zerr.With(err, "via", path.String())
}
