package classpath_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/engine/classpath"
)

func lib(name string, paths ...string) *domain.Coord {
	return &domain.Coord{Procurer: domain.ProcurerMvn, Version: "1.0", Paths: paths}
}

func TestBuild_OrderAndProvenance(t *testing.T) {
	cfg := &domain.Manifest{Paths: []string{"src", "resources"}}
	lm := domain.LibMap{
		"g/b": lib("b", "/repo/b.jar"),
		"g/a": lib("a", "/repo/a.jar"),
	}

	entries, err := classpath.Build(cfg, lm, &domain.ClasspathArgs{ExtraPaths: []string{"test"}})
	require.NoError(t, err)

	roots := make([]string, len(entries))
	for i, e := range entries {
		roots[i] = e.Root
	}
	// Project paths precede extra paths; libraries follow in sorted order.
	assert.Equal(t, []string{"src", "resources", "test", "/repo/a.jar", "/repo/b.jar"}, roots)

	assert.Equal(t, "paths", entries[0].PathKey)
	assert.Equal(t, "extra-paths", entries[2].PathKey)
	assert.Equal(t, domain.Lib("g/a"), entries[3].Lib)
}

func TestBuild_ClasspathOverrides(t *testing.T) {
	cfg := &domain.Manifest{}
	lm := domain.LibMap{
		"org.clojure/clojure": lib("clojure", "/repo/clojure.jar"),
	}

	entries, err := classpath.Build(cfg, lm, &domain.ClasspathArgs{
		ClasspathOverrides: map[domain.Lib]string{"org.clojure/clojure": "foo"},
	})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "foo", entries[0].Root)
}

func TestBuild_ChasesPathAliases(t *testing.T) {
	cfg := &domain.Manifest{
		Paths: []string{"src", ":gen"},
		Aliases: map[string]*domain.Alias{
			"gen": {Paths: []string{"target/gen", ":deep"}},
			"deep": {Paths: []string{"target/deep"}},
		},
	}

	entries, err := classpath.Build(cfg, domain.LibMap{}, nil)
	require.NoError(t, err)

	roots := make([]string, len(entries))
	keys := make([]string, len(entries))
	for i, e := range entries {
		roots[i] = e.Root
		keys[i] = e.PathKey
	}
	assert.Equal(t, []string{"src", "target/gen", "target/deep"}, roots)
	// Each literal carries the alias key most recently entered.
	assert.Equal(t, []string{"paths", "gen", "deep"}, keys)
}

func TestBuild_UnknownPathAlias(t *testing.T) {
	cfg := &domain.Manifest{Paths: []string{":nope"}}

	_, err := classpath.Build(cfg, domain.LibMap{}, nil)
	require.ErrorIs(t, err, domain.ErrUnknownPathKey)
}

func TestBuild_PathAliasCycle(t *testing.T) {
	cfg := &domain.Manifest{
		Paths: []string{":a"},
		Aliases: map[string]*domain.Alias{
			"a": {Paths: []string{":b"}},
			"b": {Paths: []string{":a"}},
		},
	}

	_, err := classpath.Build(cfg, domain.LibMap{}, nil)
	require.ErrorIs(t, err, domain.ErrUnknownPathKey)
}

func TestBuild_DeduplicatesRoots(t *testing.T) {
	cfg := &domain.Manifest{Paths: []string{"src", "src"}}

	entries, err := classpath.Build(cfg, domain.LibMap{}, &domain.ClasspathArgs{ExtraPaths: []string{"src"}})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// First occurrence wins, including its provenance.
	assert.Equal(t, "paths", entries[0].PathKey)
}

func TestJoin(t *testing.T) {
	entries := []domain.ClasspathEntry{{Root: "src"}, {Root: "/repo/a.jar"}}
	joined := classpath.Join(entries)
	assert.Equal(t, strings.Join([]string{"src", "/repo/a.jar"}, string(os.PathListSeparator)), joined)
}
