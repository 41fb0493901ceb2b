package domain

// Procurer identifies the system that materializes a coordinate to local
// filesystem paths.
type Procurer string

const (
	// ProcurerMvn obtains artifacts from Maven repositories.
	ProcurerMvn Procurer = "mvn"
	// ProcurerLocal uses a filesystem root (jar file or project directory).
	ProcurerLocal Procurer = "local"
	// ProcurerGit checks out a git revision into a shared worktree cache.
	ProcurerGit Procurer = "git"
)

// ManifestKind identifies the schema by which a library's direct
// dependencies are read.
type ManifestKind string

const (
	// ManifestPom reads dependencies from a Maven POM.
	ManifestPom ManifestKind = "pom"
	// ManifestLode reads dependencies from a nested lode.yaml project.
	ManifestLode ManifestKind = "lode"
	// ManifestJar marks a jar artifact; jars have no child dependencies.
	ManifestJar ManifestKind = "jar"
	// ManifestNone marks a coordinate with no manifest at all.
	ManifestNone ManifestKind = "none"
)

// CoordID is the procurer-determined canonical identity of a coordinate
// instance, used for dominance comparison (mvn: version, git: sha).
type CoordID string

// Coord describes how to obtain a specific instance of a library. The
// Procurer tag selects which fields are meaningful.
type Coord struct {
	Procurer Procurer

	// Version is the requested version (mvn).
	Version string
	// Root is a filesystem root (local), also filled in for every coord
	// once its manifest type has been classified.
	Root string
	// URL, SHA and Tag locate a git revision (git).
	URL string
	SHA string
	Tag string

	// Exclusions lists libraries suppressed beneath this coordinate.
	Exclusions []Lib

	// Manifest is set after manifest-type classification.
	Manifest ManifestKind

	// Paths holds the local filesystem roots after download.
	Paths []string

	// Dependents is populated in the final lib map projection: the direct
	// parents through which this library was selected.
	Dependents []Lib
}

// Clone returns a shallow copy with its own slices, so per-call tables
// never alias coords handed in by the caller.
func (c *Coord) Clone() *Coord {
	if c == nil {
		return nil
	}
	dup := *c
	if len(c.Exclusions) > 0 {
		dup.Exclusions = append([]Lib(nil), c.Exclusions...)
	}
	if len(c.Paths) > 0 {
		dup.Paths = append([]string(nil), c.Paths...)
	}
	if len(c.Dependents) > 0 {
		dup.Dependents = append([]Lib(nil), c.Dependents...)
	}
	return &dup
}

// ManifestInfo is the result of manifest-type classification.
type ManifestInfo struct {
	Kind ManifestKind
	Root string
}

// WithManifest returns a copy of c carrying the classified manifest kind
// and root.
func (c *Coord) WithManifest(info ManifestInfo) *Coord {
	dup := c.Clone()
	dup.Manifest = info.Kind
	if info.Root != "" {
		dup.Root = info.Root
	}
	return dup
}
