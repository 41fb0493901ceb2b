package app_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.trai.ch/lode/internal/engine/registry"
)

const fakeKind = domain.ManifestKind("fake")

// fakeExtension scripts an in-memory dependency universe.
type fakeExtension struct {
	children map[string][]domain.Dep
}

func (f *fakeExtension) key(lib domain.Lib, version string) string {
	return string(lib) + "@" + version
}

func (f *fakeExtension) dep(lib, version string, children ...domain.Dep) {
	if f.children == nil {
		f.children = make(map[string][]domain.Dep)
	}
	f.children[f.key(domain.Lib(lib), version)] = children
}

func (f *fakeExtension) Canonicalize(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.Lib, *domain.Coord, error) {
	dup := coord.Clone()
	dup.Procurer = domain.ProcurerMvn
	return lib, dup, nil
}

func (f *fakeExtension) DepID(_ domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.CoordID, error) {
	return domain.CoordID(coord.Version), nil
}

func (f *fakeExtension) ManifestType(_ context.Context, _ domain.Lib, _ *domain.Coord, _ *domain.Manifest) (domain.ManifestInfo, error) {
	return domain.ManifestInfo{Kind: fakeKind}, nil
}

func (f *fakeExtension) CompareVersions(_ domain.Lib, a, b *domain.Coord, _ *domain.Manifest) (int, error) {
	as := strings.Split(a.Version, ".")
	bs := strings.Split(b.Version, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y int
		if i < len(as) {
			x, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			y, _ = strconv.Atoi(bs[i])
		}
		if x != y {
			return x - y, nil
		}
	}
	return 0, nil
}

func (f *fakeExtension) CoordSummary(_ domain.Lib, coord *domain.Coord) string {
	return coord.Version
}

func (f *fakeExtension) CoordDeps(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) ([]domain.Dep, error) {
	return f.children[f.key(lib, coord.Version)], nil
}

func (f *fakeExtension) CoordPaths(_ context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) ([]string, error) {
	return []string{fmt.Sprintf("/repo/%s-%s.jar", lib.Artifact(), coord.Version)}, nil
}

func mvn(version string) *domain.Coord {
	return &domain.Coord{Procurer: domain.ProcurerMvn, Version: version}
}

func newApp(t *testing.T, f *fakeExtension, manifest *domain.Manifest) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(manifest, nil).AnyTimes()

	reg := registry.New()
	reg.RegisterProcurer(domain.ProcurerMvn, f)
	reg.RegisterManifest(fakeKind, f)

	return app.New(loader, reg, &domain.Manifest{}, nil)
}

func TestCalcBasis_AliasExtraDeps(t *testing.T) {
	f := &fakeExtension{}
	f.dep("a/a", "1.0")
	f.dep("b/b", "1.0")

	manifest := &domain.Manifest{
		Deps: map[domain.Lib]*domain.Coord{"a/a": mvn("1.0")},
		Aliases: map[string]*domain.Alias{
			"x": {ExtraDeps: map[domain.Lib]*domain.Coord{"b/b": mvn("1.0")}},
		},
	}

	basis, err := newApp(t, f, manifest).CalcBasis(context.Background(), ".", app.Options{Aliases: []string{"x"}})
	require.NoError(t, err)

	assert.Contains(t, basis.Libs, domain.Lib("a/a"))
	assert.Contains(t, basis.Libs, domain.Lib("b/b"))
}

func TestCalcBasis_ClasspathPipeline(t *testing.T) {
	f := &fakeExtension{}
	f.dep("a/a", "1.0", domain.Dep{Lib: "c/c", Coord: mvn("1.0")})
	f.dep("c/c", "1.0")

	manifest := &domain.Manifest{
		Deps:  map[domain.Lib]*domain.Coord{"a/a": mvn("1.0")},
		Paths: []string{"src"},
	}

	basis, err := newApp(t, f, manifest).CalcBasis(context.Background(), ".", app.Options{})
	require.NoError(t, err)

	roots := basis.ClasspathRoots()
	assert.Equal(t, []string{"src", "/repo/a-1.0.jar", "/repo/c-1.0.jar"}, roots)

	// Download attached the paths onto the lib map coordinates.
	assert.Equal(t, []string{"/repo/a-1.0.jar"}, basis.Libs["a/a"].Paths)
}

func TestCalcBasis_ClasspathOverride(t *testing.T) {
	f := &fakeExtension{}
	f.dep("org.clojure/clojure", "1.2.0")

	manifest := &domain.Manifest{
		Deps: map[domain.Lib]*domain.Coord{"org.clojure/clojure": mvn("1.2.0")},
	}

	basis, err := newApp(t, f, manifest).CalcBasis(context.Background(), ".", app.Options{
		ClasspathArgs: &domain.ClasspathArgs{
			ClasspathOverrides: map[domain.Lib]string{"org.clojure/clojure": "foo"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, basis.ClasspathRoots())
}

func TestCalcBasis_OverrideDepsFromAlias(t *testing.T) {
	f := &fakeExtension{}
	f.dep("cheshire/cheshire", "5.8.0", domain.Dep{Lib: "org.clojure/clojure", Coord: mvn("1.7.0")})
	f.dep("org.clojure/clojure", "1.2.0")
	f.dep("org.clojure/clojure", "1.3.0")
	f.dep("org.clojure/clojure", "1.7.0")

	manifest := &domain.Manifest{
		Deps: map[domain.Lib]*domain.Coord{
			"org.clojure/clojure": mvn("1.2.0"),
			"cheshire/cheshire":   mvn("5.8.0"),
		},
		Aliases: map[string]*domain.Alias{
			"pin": {OverrideDeps: map[domain.Lib]*domain.Coord{"org.clojure/clojure": mvn("1.3.0")}},
		},
	}

	basis, err := newApp(t, f, manifest).CalcBasis(context.Background(), ".", app.Options{Aliases: []string{"pin"}})
	require.NoError(t, err)

	assert.Equal(t, "1.3.0", basis.Libs["org.clojure/clojure"].Version)
}

func TestCalcBasis_TraceAttached(t *testing.T) {
	f := &fakeExtension{}
	f.dep("a/a", "1.0")

	manifest := &domain.Manifest{
		Deps: map[domain.Lib]*domain.Coord{"a/a": mvn("1.0")},
	}

	basis, err := newApp(t, f, manifest).CalcBasis(context.Background(), ".", app.Options{Trace: true})
	require.NoError(t, err)

	require.NotNil(t, basis.Trace)
	require.NotEmpty(t, basis.Trace.Entries)
	assert.Equal(t, domain.Lib("a/a"), basis.Trace.Entries[0].Lib)
	assert.NotNil(t, basis.Trace.VersionMap)
}

func TestCalcBasis_UnknownAlias(t *testing.T) {
	f := &fakeExtension{}
	manifest := &domain.Manifest{}

	_, err := newApp(t, f, manifest).CalcBasis(context.Background(), ".", app.Options{Aliases: []string{"nope"}})
	require.ErrorIs(t, err, domain.ErrUnknownAlias)
}

func TestMakeClasspath(t *testing.T) {
	f := &fakeExtension{}
	f.dep("a/a", "1.0")

	manifest := &domain.Manifest{
		Deps:  map[domain.Lib]*domain.Coord{"a/a": mvn("1.0")},
		Paths: []string{"src"},
	}

	cp, err := newApp(t, f, manifest).MakeClasspath(context.Background(), ".", app.Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cp, "src"))
	assert.Contains(t, cp, "/repo/a-1.0.jar")
}
