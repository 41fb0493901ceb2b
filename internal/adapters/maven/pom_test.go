package maven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/core/domain"
)

const samplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.acme</groupId>
  <artifactId>widget</artifactId>
  <version>1.4.0</version>
  <properties>
    <slf4j.version>1.7.36</slf4j.version>
  </properties>
  <dependencies>
    <dependency>
      <groupId>org.clojure</groupId>
      <artifactId>clojure</artifactId>
      <version>1.12.0</version>
    </dependency>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
      <version>${slf4j.version}</version>
      <exclusions>
        <exclusion>
          <groupId>commons-logging</groupId>
          <artifactId>commons-logging</artifactId>
        </exclusion>
      </exclusions>
    </dependency>
    <dependency>
      <groupId>com.acme</groupId>
      <artifactId>widget-core</artifactId>
      <version>${project.version}</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13.2</version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>com.acme</groupId>
      <artifactId>optional-extra</artifactId>
      <version>1.0</version>
      <optional>true</optional>
    </dependency>
    <dependency>
      <groupId>com.acme</groupId>
      <artifactId>managed</artifactId>
    </dependency>
  </dependencies>
</project>`

func TestParsePom_Deps(t *testing.T) {
	project, err := parsePom([]byte(samplePom))
	require.NoError(t, err)

	deps := project.deps()
	libs := make([]domain.Lib, len(deps))
	for i, d := range deps {
		libs[i] = d.Lib
	}

	// Test-scoped, optional and version-less dependencies are skipped.
	assert.Equal(t, []domain.Lib{
		"org.clojure/clojure",
		"org.slf4j/slf4j-api",
		"com.acme/widget-core",
	}, libs)

	// Property and project.version interpolation.
	assert.Equal(t, "1.7.36", deps[1].Coord.Version)
	assert.Equal(t, "1.4.0", deps[2].Coord.Version)

	// Exclusions carry over to the coordinate.
	assert.Equal(t, []domain.Lib{"commons-logging/commons-logging"}, deps[1].Coord.Exclusions)
}

func TestParsePom_ParentInheritance(t *testing.T) {
	pom := `<project>
  <parent>
    <groupId>com.acme</groupId>
    <artifactId>parent</artifactId>
    <version>2.0.0</version>
  </parent>
  <artifactId>child</artifactId>
  <dependencies>
    <dependency>
      <groupId>com.acme</groupId>
      <artifactId>sibling</artifactId>
      <version>${project.version}</version>
    </dependency>
  </dependencies>
</project>`

	project, err := parsePom([]byte(pom))
	require.NoError(t, err)
	assert.Equal(t, "com.acme", project.effectiveGroupID())
	assert.Equal(t, "2.0.0", project.effectiveVersion())

	deps := project.deps()
	require.Len(t, deps, 1)
	assert.Equal(t, "2.0.0", deps[0].Coord.Version)
}

func TestParsePom_Malformed(t *testing.T) {
	_, err := parsePom([]byte("<project><dependencies>"))
	require.Error(t, err)
}

func TestCompareVersions(t *testing.T) {
	ext := &Extension{}

	tests := []struct {
		a, b string
		sign int
	}{
		{"1.10.1", "1.9.0", 1},
		{"1.9.0", "1.10.1", -1},
		{"1.10.1", "1.10.1", 0},
		{"2.0.0-alpha1", "2.0.0", -1},
		{"1.0.0", "1.0.0-alpha", 1},
		// Maven-style versions semver cannot parse.
		{"1.0.0.1", "1.0.0.2", -1},
		{"1.0.0.10", "1.0.0.2", 1},
	}

	for _, tt := range tests {
		got, err := ext.CompareVersions("g/a", &domain.Coord{Version: tt.a}, &domain.Coord{Version: tt.b}, nil)
		require.NoError(t, err)
		switch {
		case tt.sign > 0:
			assert.Positive(t, got, "%s vs %s", tt.a, tt.b)
		case tt.sign < 0:
			assert.Negative(t, got, "%s vs %s", tt.a, tt.b)
		default:
			assert.Zero(t, got, "%s vs %s", tt.a, tt.b)
		}
	}
}

func TestArtifactPath(t *testing.T) {
	assert.Equal(t,
		"org/clojure/clojure/1.12.0/clojure-1.12.0.jar",
		artifactPath("org.clojure/clojure", "1.12.0", "", "jar"))
	assert.Equal(t,
		"org/clojure/clojure/1.12.0/clojure-1.12.0-sources.jar",
		artifactPath("org.clojure/clojure$sources", "1.12.0", "sources", "jar"))
}
