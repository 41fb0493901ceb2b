// Package config provides the manifest loader for lode.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file name looked up in a project
// directory.
const DefaultFilename = "lode.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a loader for the default manifest filename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename, log: log}
}

// Load reads the manifest from the given project directory.
func (l *FileConfigLoader) Load(dir string) (*domain.Manifest, error) {
	return l.LoadFile(filepath.Join(dir, l.filename()))
}

// LoadFile reads a manifest from an explicit path.
func (l *FileConfigLoader) LoadFile(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}
	m, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Parse decodes manifest bytes. Unknown top-level or alias keys are
// fatal; unqualified library names are rewritten to group/artifact form
// with a deprecation warning.
func (l *FileConfigLoader) Parse(data []byte) (*domain.Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var dto manifestDTO
	if err := dec.Decode(&dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	deps, err := l.decodeDeps(dto.Deps)
	if err != nil {
		return nil, err
	}

	m := &domain.Manifest{
		Deps:  deps,
		Paths: dto.Paths,
	}

	if len(dto.Aliases) > 0 {
		m.Aliases = make(map[string]*domain.Alias, len(dto.Aliases))
		for name, node := range dto.Aliases {
			alias, err := l.decodeAlias(&node)
			if err != nil {
				return nil, zerr.With(err, "alias", name)
			}
			m.Aliases[name] = alias
		}
	}

	if len(dto.MvnRepos) > 0 {
		m.MvnRepos = make(map[string]domain.MavenRepo, len(dto.MvnRepos))
		for name, repo := range dto.MvnRepos {
			m.MvnRepos[name] = domain.MavenRepo{URL: repo.URL}
		}
	}

	return m, nil
}

func (l *FileConfigLoader) decodeDeps(nodes map[string]yaml.Node) (map[domain.Lib]*domain.Coord, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	deps := make(map[domain.Lib]*domain.Coord, len(nodes))
	for name, node := range nodes {
		lib, err := l.canonicalLib(name)
		if err != nil {
			return nil, err
		}
		coord, err := decodeCoord(&node)
		if err != nil {
			return nil, zerr.With(err, "lib", lib.String())
		}
		deps[lib] = coord
	}
	return deps, nil
}

// canonicalLib qualifies bare names and validates the result.
func (l *FileConfigLoader) canonicalLib(name string) (domain.Lib, error) {
	lib, rewritten := domain.Qualify(name)
	if rewritten && l.log != nil {
		l.log.Warn(fmt.Sprintf("DEPRECATED: unqualified lib %q, use %q instead", name, lib))
	}
	return domain.ParseLib(lib.String())
}

// decodeCoord accepts either the shorthand scalar form ("1.2.3", a Maven
// version) or the long map form with one procurer section.
func decodeCoord(node *yaml.Node) (*domain.Coord, error) {
	if node.Kind == yaml.ScalarNode {
		var version string
		if err := node.Decode(&version); err != nil {
			return nil, zerr.Wrap(err, "failed to parse coordinate")
		}
		return &domain.Coord{Procurer: domain.ProcurerMvn, Version: version}, nil
	}

	var dto coordDTO
	if err := node.Decode(&dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse coordinate")
	}

	coord := &domain.Coord{}
	switch {
	case dto.Mvn != nil:
		coord.Procurer = domain.ProcurerMvn
		coord.Version = dto.Mvn.Version
	case dto.Local != nil:
		coord.Procurer = domain.ProcurerLocal
		coord.Root = dto.Local.Root
	case dto.Git != nil:
		coord.Procurer = domain.ProcurerGit
		coord.URL = dto.Git.URL
		coord.SHA = dto.Git.SHA
		coord.Tag = dto.Git.Tag
	default:
		return nil, zerr.New("coordinate has no procurer section")
	}

	for _, name := range dto.Exclusions {
		lib, err := domain.ParseLib(name)
		if err != nil {
			return nil, err
		}
		coord.Exclusions = append(coord.Exclusions, lib)
	}
	return coord, nil
}

// decodeAlias accepts either an argument map or, for path aliases, a
// plain sequence of roots.
func (l *FileConfigLoader) decodeAlias(node *yaml.Node) (*domain.Alias, error) {
	if node.Kind == yaml.SequenceNode {
		var paths []string
		if err := node.Decode(&paths); err != nil {
			return nil, zerr.Wrap(err, "failed to parse path alias")
		}
		return &domain.Alias{Paths: paths}, nil
	}

	if err := checkAliasKeys(node); err != nil {
		return nil, err
	}

	var dto aliasDTO
	if err := node.Decode(&dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse alias")
	}

	alias := &domain.Alias{
		Paths:      dto.Paths,
		ExtraPaths: dto.ExtraPaths,
		JvmOpts:    dto.JvmOpts,
	}
	if dto.MainOpts != nil {
		alias.SetMainOpts(*dto.MainOpts)
	}

	var err error
	if alias.Deps, err = l.decodeDeps(dto.Deps); err != nil {
		return nil, err
	}
	if alias.ExtraDeps, err = l.decodeDeps(dto.ExtraDeps); err != nil {
		return nil, err
	}
	if alias.OverrideDeps, err = l.decodeDeps(dto.OverrideDeps); err != nil {
		return nil, err
	}
	if alias.DefaultDeps, err = l.decodeDeps(dto.DefaultDeps); err != nil {
		return nil, err
	}

	if len(dto.ClasspathOverrides) > 0 {
		alias.ClasspathOverrides = make(map[domain.Lib]string, len(dto.ClasspathOverrides))
		for name, root := range dto.ClasspathOverrides {
			lib, err := l.canonicalLib(name)
			if err != nil {
				return nil, err
			}
			alias.ClasspathOverrides[lib] = root
		}
	}

	return alias, nil
}

func checkAliasKeys(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.New("alias body must be a map or a path list")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !aliasKeys[key] {
			return zerr.With(domain.ErrUnknownAliasKey, "key", key)
		}
	}
	return nil
}

func (l *FileConfigLoader) filename() string {
	if l.Filename == "" {
		return DefaultFilename
	}
	return l.Filename
}

// RootManifest is the built-in lowest-precedence manifest supplying the
// default Maven repositories.
func RootManifest() *domain.Manifest {
	return &domain.Manifest{
		MvnRepos: map[string]domain.MavenRepo{
			"central": {URL: "https://repo1.maven.org/maven2/"},
			"clojars": {URL: "https://repo.clojars.org/"},
		},
	}
}
