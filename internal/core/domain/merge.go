package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// MergeManifests merges top-level deps maps left to right. At each key,
// map-valued entries merge key-by-key with the right side winning;
// everything else is replaced by the right side. Nil manifests are
// skipped.
func MergeManifests(manifests ...*Manifest) *Manifest {
	out := &Manifest{}
	for _, m := range manifests {
		if m == nil {
			continue
		}
		out.Deps = mergeCoordMaps(out.Deps, m.Deps)
		if m.Paths != nil {
			out.Paths = slices.Clone(m.Paths)
		}
		if m.Aliases != nil {
			if out.Aliases == nil {
				out.Aliases = make(map[string]*Alias, len(m.Aliases))
			}
			for name, alias := range m.Aliases {
				out.Aliases[name] = alias
			}
		}
		if m.MvnRepos != nil {
			if out.MvnRepos == nil {
				out.MvnRepos = make(map[string]MavenRepo, len(m.MvnRepos))
			}
			for name, repo := range m.MvnRepos {
				out.MvnRepos[name] = repo
			}
		}
	}
	return out
}

// CombineAliases merges the named aliases of manifest into a single
// argument map using the per-key merge rules: dep maps and classpath
// overrides merge right-wins key-by-key, path lists concatenate and
// deduplicate preserving first occurrence, jvm-opts concatenate without
// deduplication, and main-opts take the last declared value.
func CombineAliases(m *Manifest, names []string) (*Alias, error) {
	out := &Alias{}
	for _, name := range names {
		alias, ok := m.Aliases[name]
		if !ok {
			return nil, zerr.With(ErrUnknownAlias, "alias", name)
		}
		out.Deps = mergeCoordMaps(out.Deps, alias.Deps)
		out.ExtraDeps = mergeCoordMaps(out.ExtraDeps, alias.ExtraDeps)
		out.OverrideDeps = mergeCoordMaps(out.OverrideDeps, alias.OverrideDeps)
		out.DefaultDeps = mergeCoordMaps(out.DefaultDeps, alias.DefaultDeps)
		out.ClasspathOverrides = mergeStringMaps(out.ClasspathOverrides, alias.ClasspathOverrides)
		out.Paths = concatDedup(out.Paths, alias.Paths)
		out.ExtraPaths = concatDedup(out.ExtraPaths, alias.ExtraPaths)
		out.JvmOpts = append(out.JvmOpts, alias.JvmOpts...)
		if alias.HasMainOpts() {
			out.SetMainOpts(alias.MainOpts)
		}
	}
	return out, nil
}

func mergeCoordMaps(left, right map[Lib]*Coord) map[Lib]*Coord {
	if len(right) == 0 {
		return left
	}
	if left == nil {
		left = make(map[Lib]*Coord, len(right))
	}
	for lib, coord := range right {
		left[lib] = coord
	}
	return left
}

func mergeStringMaps(left, right map[Lib]string) map[Lib]string {
	if len(right) == 0 {
		return left
	}
	if left == nil {
		left = make(map[Lib]string, len(right))
	}
	for lib, s := range right {
		left[lib] = s
	}
	return left
}

func concatDedup(left, right []string) []string {
	for _, s := range right {
		if !slices.Contains(left, s) {
			left = append(left, s)
		}
	}
	return left
}
