// Package classpath assembles the ordered classpath from a resolved lib
// map and the manifest's path configuration.
package classpath

import (
	"os"
	"slices"
	"strings"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// Build produces the ordered classpath entries: project paths first
// (the manifest's paths, then the extra paths, each chased through path
// aliases), followed by every library's resolved roots in sorted library
// order. Classpath overrides replace a library's roots wholesale.
func Build(cfg *domain.Manifest, lm domain.LibMap, args *domain.ClasspathArgs) ([]domain.ClasspathEntry, error) {
	if args == nil {
		args = &domain.ClasspathArgs{}
	}

	assembler := &assembler{
		aliases: cfg.Aliases,
		seen:    make(map[string]bool),
	}

	// Synthetic entries for the project's own path lists.
	if err := assembler.chase("paths", cfg.Paths, "paths"); err != nil {
		return nil, err
	}
	if err := assembler.chase("extra-paths", args.ExtraPaths, "extra-paths"); err != nil {
		return nil, err
	}

	libs := lm.Libs()
	slices.Sort(libs)
	for _, lib := range libs {
		roots := lm[lib].Paths
		if override, ok := args.ClasspathOverrides[lib]; ok {
			roots = []string{override}
		}
		for _, root := range roots {
			assembler.add(domain.ClasspathEntry{Root: root, Lib: lib})
		}
	}

	return assembler.entries, nil
}

// assembler accumulates classpath entries preserving insertion order and
// first occurrence of each root.
type assembler struct {
	aliases map[string]*domain.Alias
	entries []domain.ClasspathEntry
	seen    map[string]bool
	chasing []string
}

func (a *assembler) add(entry domain.ClasspathEntry) {
	if a.seen[entry.Root] {
		return
	}
	a.seen[entry.Root] = true
	a.entries = append(a.entries, entry)
}

// chase recursively flattens a path list: plain strings are literal
// roots, ":key" entries name further alias keys. Each literal is tagged
// with the alias key most recently entered.
func (a *assembler) chase(key string, paths []string, pathKey string) error {
	if slices.Contains(a.chasing, key) {
		err := zerr.With(domain.ErrUnknownPathKey, "key", key)
		return zerr.With(err, "cycle", strings.Join(append(a.chasing, key), " -> "))
	}
	a.chasing = append(a.chasing, key)
	defer func() { a.chasing = a.chasing[:len(a.chasing)-1] }()

	for _, p := range paths {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			alias, exists := a.aliases[name]
			if !exists {
				return zerr.With(domain.ErrUnknownPathKey, "key", name)
			}
			if err := a.chase(name, alias.Paths, name); err != nil {
				return err
			}
			continue
		}
		a.add(domain.ClasspathEntry{Root: p, PathKey: pathKey})
	}
	return nil
}

// Join renders entries as a classpath string using the host path
// separator.
func Join(entries []domain.ClasspathEntry) string {
	roots := make([]string, len(entries))
	for i, entry := range entries {
		roots[i] = entry.Root
	}
	return strings.Join(roots, string(os.PathListSeparator))
}
