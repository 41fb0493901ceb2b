// Package maven implements the mvn procurer: repository-layout artifact
// procurement, POM dependency reading and Maven version comparison.
package maven

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extension implements the mvn procurer and the pom manifest reader.
type Extension struct {
	cacheDir string
	client   *http.Client
}

// New creates the extension with the given local repository cache
// directory. An empty dir defaults to ~/.lode/m2/repository.
func New(cacheDir string, client *http.Client) (*Extension, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate home directory")
		}
		cacheDir = filepath.Join(home, ".lode", "m2", "repository")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Extension{cacheDir: cacheDir, client: client}, nil
}

// Canonicalize fills in the procurer tag for shorthand coordinates that
// carried only a version.
func (e *Extension) Canonicalize(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.Lib, *domain.Coord, error) {
	if coord.Version == "" {
		err := zerr.With(zerr.New("mvn coordinate missing version"), "lib", lib.String())
		return "", nil, err
	}
	dup := coord.Clone()
	dup.Procurer = domain.ProcurerMvn
	return lib, dup, nil
}

// DepID identifies a Maven coordinate by its version.
func (e *Extension) DepID(_ domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.CoordID, error) {
	if coord.Version == "" {
		return "", zerr.New("mvn coordinate missing version")
	}
	return domain.CoordID(coord.Version), nil
}

// ManifestType classifies Maven coordinates as pom manifests rooted at
// the artifact's local repository directory.
func (e *Extension) ManifestType(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.ManifestInfo, error) {
	rel := artifactPath(lib, coord.Version, "", "pom")
	return domain.ManifestInfo{
		Kind: domain.ManifestPom,
		Root: filepath.Dir(filepath.Join(e.cacheDir, rel)),
	}, nil
}

// CompareVersions compares Maven versions: semantic comparison when both
// parse as (possibly coerced) semver, falling back to a numeric-aware
// segment comparison for Maven-style versions semver cannot express.
func (e *Extension) CompareVersions(_ domain.Lib, a, b *domain.Coord, _ *domain.Manifest) (int, error) {
	av, aerr := semver.NewVersion(a.Version)
	bv, berr := semver.NewVersion(b.Version)
	if aerr == nil && berr == nil {
		return av.Compare(bv), nil
	}
	return compareSegments(a.Version, b.Version), nil
}

// CoordSummary renders the version for tree printing.
func (e *Extension) CoordSummary(_ domain.Lib, coord *domain.Coord) string {
	return coord.Version
}

// CoordDeps reads the coordinate's POM and returns its compile and
// runtime dependencies. POM fetches are memoized per session.
func (e *Extension) CoordDeps(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) ([]domain.Dep, error) {
	project, err := e.readPom(ctx, lib, coord, cfg)
	if err != nil {
		return nil, err
	}
	return project.deps(), nil
}

// CoordPaths procures the jar artifact and returns its local path.
func (e *Extension) CoordPaths(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) ([]string, error) {
	path, err := e.ensureArtifact(ctx, lib, coord.Version, lib.Classifier(), "jar", cfg)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func (e *Extension) readPom(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) (*pomProject, error) {
	read := func() (any, error) {
		path, err := e.ensureArtifact(ctx, lib, coord.Version, "", "pom", cfg)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path) //nolint:gosec // path is inside the cache
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read pom")
		}
		return parsePom(data)
	}

	var value any
	var err error
	if sess := domain.SessionFrom(ctx); sess != nil {
		key := fmt.Sprintf("mvn:pom:%s:%s", lib, coord.Version)
		value, err = sess.Memoize(key, read)
	} else {
		value, err = read()
	}
	if err != nil {
		return nil, err
	}
	return value.(*pomProject), nil
}

// compareSegments compares dot/dash separated versions segment by
// segment, numerically where both segments are numeric.
func compareSegments(a, b string) int {
	split := func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '-' })
	}
	as, bs := split(a), split(b)
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if x == y {
			continue
		}
		xn, xok := atoi(x)
		yn, yok := atoi(y)
		switch {
		case xok && yok:
			if xn != yn {
				return xn - yn
			}
		case xok:
			return 1 // numeric segments sort after qualifiers
		case yok:
			return -1
		default:
			return strings.Compare(x, y)
		}
	}
	return 0
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

var (
	_ ports.Extension      = (*Extension)(nil)
	_ ports.ManifestReader = (*Extension)(nil)
)
