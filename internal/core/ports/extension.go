// Package ports defines the core interfaces for the resolver.
package ports

import (
	"context"

	"go.trai.ch/lode/internal/core/domain"
)

// Extension is a procurer plugin: it knows how to normalize, identify,
// classify and compare coordinates of one procurer tag. All methods are
// pure with respect to the version map; failures are returned as errors
// and surfaced through the expansion driver.
//
//go:generate go run go.uber.org/mock/mockgen -source=extension.go -destination=mocks/mock_extension.go -package=mocks
type Extension interface {
	// Canonicalize normalizes shorthand coordinates (e.g. a bare version
	// string) into their full form, possibly rewriting the library name.
	// It may fetch (e.g. resolving a git tag to its sha).
	Canonicalize(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) (domain.Lib, *domain.Coord, error)

	// DepID returns the coordinate's stable identity for dominance
	// comparison.
	DepID(lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) (domain.CoordID, error)

	// ManifestType classifies how the coordinate's child dependencies are
	// read, resolving the coordinate's filesystem root where needed. It
	// may fetch.
	ManifestType(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) (domain.ManifestInfo, error)

	// CompareVersions compares two coordinates of this procurer. The
	// result is positive when a dominates b.
	CompareVersions(lib domain.Lib, a, b *domain.Coord, cfg *domain.Manifest) (int, error)

	// CoordSummary renders a short human-readable form for tree printing.
	CoordSummary(lib domain.Lib, coord *domain.Coord) string
}

// ManifestReader reads libraries through one manifest kind. The
// coordinate's Root is the base directory for any relative references in
// the manifest; implementations must not rely on the process working
// directory.
type ManifestReader interface {
	// CoordDeps returns the coordinate's direct child dependencies, in
	// manifest order.
	CoordDeps(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) ([]domain.Dep, error)

	// CoordPaths procures the coordinate and returns its local classpath
	// roots. It may fetch.
	CoordPaths(ctx context.Context, lib domain.Lib, coord *domain.Coord, cfg *domain.Manifest) ([]string, error)
}
