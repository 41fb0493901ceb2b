package domain

// MavenRepo configures one Maven repository. The core treats the repo map
// as opaque configuration for the mvn procurer.
type MavenRepo struct {
	URL string `yaml:"url"`
}

// Manifest is a merged deps map: the declarative project configuration the
// resolver operates on.
type Manifest struct {
	Deps     map[Lib]*Coord
	Paths    []string
	Aliases  map[string]*Alias
	MvnRepos map[string]MavenRepo
}

// Alias is one named argument map under the manifest's aliases key.
type Alias struct {
	Deps               map[Lib]*Coord
	ExtraDeps          map[Lib]*Coord
	OverrideDeps       map[Lib]*Coord
	DefaultDeps        map[Lib]*Coord
	ClasspathOverrides map[Lib]string
	Paths              []string
	ExtraPaths         []string
	JvmOpts            []string
	MainOpts           []string

	mainOptsSet bool
}

// SetMainOpts records main-opts, marking them present even when empty so
// that "last non-nil wins" can distinguish unset from empty.
func (a *Alias) SetMainOpts(opts []string) {
	a.MainOpts = opts
	a.mainOptsSet = true
}

// HasMainOpts reports whether main-opts were declared.
func (a *Alias) HasMainOpts() bool {
	return a.mainOptsSet
}

// ResolveArgs are the per-call options for dependency expansion.
type ResolveArgs struct {
	ExtraDeps    map[Lib]*Coord
	OverrideDeps map[Lib]*Coord
	DefaultDeps  map[Lib]*Coord
	Threads      int
	Trace        bool
}

// ClasspathArgs are the per-call options for classpath assembly.
type ClasspathArgs struct {
	ExtraPaths         []string
	ClasspathOverrides map[Lib]string
}

// ClasspathEntry is one ordered classpath element: a filesystem root and
// its provenance (either the contributing library or the alias key whose
// paths produced it).
type ClasspathEntry struct {
	Root    string
	Lib     Lib
	PathKey string
}

// Basis is the computed launch basis: the merged manifest plus the
// resolved lib map and assembled classpath.
type Basis struct {
	Manifest      *Manifest
	ResolveArgs   *ResolveArgs
	ClasspathArgs *ClasspathArgs
	Libs          LibMap
	Classpath     []ClasspathEntry
}

// ClasspathRoots returns the ordered filesystem roots of the classpath.
func (b *Basis) ClasspathRoots() []string {
	roots := make([]string, len(b.Classpath))
	for i, entry := range b.Classpath {
		roots[i] = entry.Root
	}
	return roots
}
