// Package localfs implements the local procurer: coordinates that point
// at a jar file or project directory on the local filesystem.
package localfs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// ManifestFilename is the project manifest probed for inside a local
// root directory.
const ManifestFilename = "lode.yaml"

// Extension implements the local procurer.
type Extension struct{}

// New creates the extension.
func New() *Extension {
	return &Extension{}
}

// Canonicalize resolves the root to an absolute path.
func (e *Extension) Canonicalize(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.Lib, *domain.Coord, error) {
	if coord.Root == "" {
		return "", nil, zerr.With(zerr.New("local coordinate missing root"), "lib", lib.String())
	}
	abs, err := filepath.Abs(coord.Root)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to resolve local root")
	}
	dup := coord.Clone()
	dup.Procurer = domain.ProcurerLocal
	dup.Root = abs
	return lib, dup, nil
}

// DepID identifies a local coordinate by its absolute root.
func (e *Extension) DepID(_ domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.CoordID, error) {
	abs, err := filepath.Abs(coord.Root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve local root")
	}
	return domain.CoordID(abs), nil
}

// ManifestType classifies the root: a jar file, a directory with a
// project manifest, or a bare directory with no manifest.
func (e *Extension) ManifestType(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.ManifestInfo, error) {
	return ClassifyRoot(lib, coord.Root)
}

// ClassifyRoot decides the manifest kind for a filesystem root. The git
// procurer shares this classification for its checked-out worktrees.
func ClassifyRoot(lib domain.Lib, root string) (domain.ManifestInfo, error) {
	info, err := os.Stat(root)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "local root not found"), "lib", lib.String())
		return domain.ManifestInfo{}, err
	}
	if !info.IsDir() {
		if strings.HasSuffix(root, ".jar") {
			return domain.ManifestInfo{Kind: domain.ManifestJar, Root: root}, nil
		}
		return domain.ManifestInfo{Kind: domain.ManifestNone, Root: root}, nil
	}
	if _, err := os.Stat(filepath.Join(root, ManifestFilename)); err == nil {
		return domain.ManifestInfo{Kind: domain.ManifestLode, Root: root}, nil
	}
	return domain.ManifestInfo{Kind: domain.ManifestNone, Root: root}, nil
}

// CompareVersions considers local coordinates equal only when they point
// at the same root; distinct roots have no version order.
func (e *Extension) CompareVersions(lib domain.Lib, a, b *domain.Coord, _ *domain.Manifest) (int, error) {
	if a.Root == b.Root {
		return 0, nil
	}
	err := zerr.With(zerr.New("local coordinates with different roots are not comparable"), "lib", lib.String())
	err = zerr.With(err, "a", a.Root)
	return 0, zerr.With(err, "b", b.Root)
}

// CoordSummary renders the root path.
func (e *Extension) CoordSummary(_ domain.Lib, coord *domain.Coord) string {
	return coord.Root
}

// StaticReader serves the manifest kinds that have no children: jars and
// bare roots. The coordinate's root is its only classpath path.
type StaticReader struct{}

// NewStaticReader creates the reader.
func NewStaticReader() *StaticReader {
	return &StaticReader{}
}

// CoordDeps returns no children.
func (r *StaticReader) CoordDeps(_ context.Context, _ domain.Lib, _ *domain.Coord, _ *domain.Manifest) ([]domain.Dep, error) {
	return nil, nil
}

// CoordPaths returns the coordinate's root.
func (r *StaticReader) CoordPaths(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) ([]string, error) {
	if coord.Root == "" {
		return nil, zerr.With(zerr.New("coordinate has no root"), "lib", lib.String())
	}
	return []string{coord.Root}, nil
}

var (
	_ ports.Extension      = (*Extension)(nil)
	_ ports.ManifestReader = (*StaticReader)(nil)
)
