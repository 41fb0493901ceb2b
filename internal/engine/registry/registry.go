// Package registry dispatches coordinate operations to pluggable
// procurer extensions and manifest readers.
package registry

import (
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps procurer tags to extensions and manifest kinds to
// readers. It is assembled once at wiring time and read-only afterwards.
type Registry struct {
	procurers map[domain.Procurer]ports.Extension
	manifests map[domain.ManifestKind]ports.ManifestReader
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		procurers: make(map[domain.Procurer]ports.Extension),
		manifests: make(map[domain.ManifestKind]ports.ManifestReader),
	}
}

// RegisterProcurer installs an extension for a procurer tag.
func (r *Registry) RegisterProcurer(tag domain.Procurer, ext ports.Extension) {
	r.procurers[tag] = ext
}

// RegisterManifest installs a reader for a manifest kind.
func (r *Registry) RegisterManifest(kind domain.ManifestKind, reader ports.ManifestReader) {
	r.manifests[kind] = reader
}

// Procurer returns the extension for tag.
func (r *Registry) Procurer(tag domain.Procurer) (ports.Extension, error) {
	ext, ok := r.procurers[tag]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownProcurer, "procurer", string(tag))
	}
	return ext, nil
}

// Manifest returns the reader for kind.
func (r *Registry) Manifest(kind domain.ManifestKind) (ports.ManifestReader, error) {
	reader, ok := r.manifests[kind]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownManifest, "manifest", string(kind))
	}
	return reader, nil
}

// CompareVersions delegates dominance comparison to the coordinates'
// procurer extension. Coordinates of different procurers do not compare.
func (r *Registry) CompareVersions(lib domain.Lib, a, b *domain.Coord, cfg *domain.Manifest) (int, error) {
	if a.Procurer != b.Procurer {
		err := zerr.With(domain.ErrProcurerMismatch, "lib", lib.String())
		err = zerr.With(err, "a", string(a.Procurer))
		return 0, zerr.With(err, "b", string(b.Procurer))
	}
	ext, err := r.Procurer(a.Procurer)
	if err != nil {
		return 0, err
	}
	return ext.CompareVersions(lib, a, b, cfg)
}

// Comparator adapts CompareVersions to the version map's comparator
// shape.
func (r *Registry) Comparator(cfg *domain.Manifest) domain.Comparator {
	return func(lib domain.Lib, a, b *domain.Coord) (int, error) {
		return r.CompareVersions(lib, a, b, cfg)
	}
}

// CoordSummary renders a coordinate through its extension, falling back
// to the procurer tag when none is registered.
func (r *Registry) CoordSummary(lib domain.Lib, coord *domain.Coord) string {
	ext, err := r.Procurer(coord.Procurer)
	if err != nil {
		return string(coord.Procurer)
	}
	return ext.CoordSummary(lib, coord)
}
