package expand_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/engine/expand"
)

func TestDownload_AttachesPaths(t *testing.T) {
	f := newFake()
	reg := newRegistry(f)

	a := mvn("1.0")
	a.Manifest = fakeKind
	b := mvn("2.0")
	b.Manifest = fakeKind
	lm := domain.LibMap{
		"g/a": a,
		"g/b": b,
	}

	err := expand.Download(context.Background(), lm, reg, &domain.Manifest{}, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/repo/a-1.0.jar"}, lm["g/a"].Paths)
	assert.Equal(t, []string{"/repo/b-2.0.jar"}, lm["g/b"].Paths)
}

func TestDownload_UnknownManifestFails(t *testing.T) {
	f := newFake()
	reg := newRegistry(f)

	coord := mvn("1.0")
	coord.Manifest = domain.ManifestKind("mystery")
	lm := domain.LibMap{"g/a": coord}

	err := expand.Download(context.Background(), lm, reg, &domain.Manifest{}, 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownManifest)
}
