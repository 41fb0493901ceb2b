package localfs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/adapters/localfs"
	"go.trai.ch/lode/internal/core/domain"
)

func TestClassifyRoot(t *testing.T) {
	dir := t.TempDir()

	jar := filepath.Join(dir, "widget.jar")
	require.NoError(t, os.WriteFile(jar, []byte("jar"), 0o644))

	project := filepath.Join(dir, "project")
	require.NoError(t, os.MkdirAll(project, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, localfs.ManifestFilename), []byte("{}"), 0o644))

	bare := filepath.Join(dir, "bare")
	require.NoError(t, os.MkdirAll(bare, 0o755))

	tests := []struct {
		root string
		kind domain.ManifestKind
	}{
		{jar, domain.ManifestJar},
		{project, domain.ManifestLode},
		{bare, domain.ManifestNone},
	}
	for _, tt := range tests {
		info, err := localfs.ClassifyRoot("g/a", tt.root)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, info.Kind, tt.root)
		assert.Equal(t, tt.root, info.Root)
	}

	_, err := localfs.ClassifyRoot("g/a", filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestCanonicalize_ResolvesAbsoluteRoot(t *testing.T) {
	ext := localfs.New()

	_, coord, err := ext.Canonicalize(context.Background(), "g/a", &domain.Coord{Root: "rel/path"}, nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(coord.Root))
	assert.Equal(t, domain.ProcurerLocal, coord.Procurer)

	_, _, err = ext.Canonicalize(context.Background(), "g/a", &domain.Coord{}, nil)
	require.Error(t, err)
}

func TestCompareVersions_LocalRoots(t *testing.T) {
	ext := localfs.New()

	n, err := ext.CompareVersions("g/a", &domain.Coord{Root: "/x"}, &domain.Coord{Root: "/x"}, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = ext.CompareVersions("g/a", &domain.Coord{Root: "/x"}, &domain.Coord{Root: "/y"}, nil)
	require.Error(t, err)
}

func TestStaticReader(t *testing.T) {
	reader := localfs.NewStaticReader()

	deps, err := reader.CoordDeps(context.Background(), "g/a", &domain.Coord{Root: "/x"}, nil)
	require.NoError(t, err)
	assert.Empty(t, deps)

	paths, err := reader.CoordPaths(context.Background(), "g/a", &domain.Coord{Root: "/x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/x"}, paths)

	_, err = reader.CoordPaths(context.Background(), "g/a", &domain.Coord{}, nil)
	require.Error(t, err)
}
