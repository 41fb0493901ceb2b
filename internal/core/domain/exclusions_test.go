package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lode/internal/core/domain"
)

func TestExclusionSet_PrefixLookup(t *testing.T) {
	x := domain.NewExclusionSet()
	x.Add(domain.Path{"a/a"}, []domain.Lib{"e/e"})

	// Excluded beneath a/a at any depth.
	assert.True(t, x.Excluded(domain.Path{"a/a"}, "e/e"))
	assert.True(t, x.Excluded(domain.Path{"a/a", "b/b"}, "e/e"))
	assert.True(t, x.Excluded(domain.Path{"a/a", "b/b", "c/c"}, "e/e"))

	// Not excluded through an unrelated path.
	assert.False(t, x.Excluded(domain.Path{"z/z"}, "e/e"))
	assert.False(t, x.Excluded(nil, "e/e"))
	assert.False(t, x.Excluded(domain.Path{"a/a"}, "f/f"))
}

func TestExclusionSet_TopLevel(t *testing.T) {
	x := domain.NewExclusionSet()
	x.Add(nil, []domain.Lib{"e/e"})

	// An exclusion at the empty path suppresses e/e everywhere beneath.
	assert.True(t, x.Excluded(domain.Path{"a/a"}, "e/e"))
	assert.True(t, x.Excluded(nil, "e/e"))
}

func TestExclusionSet_ClassifierShared(t *testing.T) {
	x := domain.NewExclusionSet()
	x.Add(domain.Path{"a/a"}, []domain.Lib{"e/e$sources"})

	// Classifier variants share one entry with the base lib.
	assert.True(t, x.Excluded(domain.Path{"a/a"}, "e/e"))
	assert.True(t, x.Excluded(domain.Path{"a/a"}, "e/e$javadoc"))
}
