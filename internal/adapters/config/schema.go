package config

import "gopkg.in/yaml.v3"

// manifestDTO mirrors the structure of a lode.yaml manifest file.
type manifestDTO struct {
	Deps     map[string]yaml.Node `yaml:"deps"`
	Paths    []string             `yaml:"paths"`
	Aliases  map[string]yaml.Node `yaml:"aliases"`
	MvnRepos map[string]repoDTO   `yaml:"mvn-repos"`
}

type repoDTO struct {
	URL string `yaml:"url"`
}

// coordDTO is the long form of a coordinate. Exactly one procurer section
// is expected.
type coordDTO struct {
	Mvn        *mvnDTO   `yaml:"mvn"`
	Local      *localDTO `yaml:"local"`
	Git        *gitDTO   `yaml:"git"`
	Exclusions []string  `yaml:"exclusions"`
}

type mvnDTO struct {
	Version string `yaml:"version"`
}

type localDTO struct {
	Root string `yaml:"root"`
}

type gitDTO struct {
	URL string `yaml:"url"`
	SHA string `yaml:"sha"`
	Tag string `yaml:"tag"`
}

// aliasDTO is one named argument map under aliases. MainOpts is a pointer
// so that a declared-but-empty value is distinguishable from an absent
// one (last non-nil wins during combination).
type aliasDTO struct {
	Deps               map[string]yaml.Node `yaml:"deps"`
	ExtraDeps          map[string]yaml.Node `yaml:"extra-deps"`
	OverrideDeps       map[string]yaml.Node `yaml:"override-deps"`
	DefaultDeps        map[string]yaml.Node `yaml:"default-deps"`
	ClasspathOverrides map[string]string    `yaml:"classpath-overrides"`
	Paths              []string             `yaml:"paths"`
	ExtraPaths         []string             `yaml:"extra-paths"`
	JvmOpts            []string             `yaml:"jvm-opts"`
	MainOpts           *[]string            `yaml:"main-opts"`
}

// aliasKeys are the recognized alias-body keys; anything else is a fatal
// input error.
var aliasKeys = map[string]bool{
	"deps":                true,
	"extra-deps":          true,
	"override-deps":       true,
	"default-deps":        true,
	"classpath-overrides": true,
	"paths":               true,
	"extra-paths":         true,
	"jvm-opts":            true,
	"main-opts":           true,
}
