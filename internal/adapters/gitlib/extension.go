// Package gitlib implements the git procurer: coordinates identified by
// a revision sha, checked out into a shared worktree cache.
package gitlib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"

	"go.trai.ch/lode/internal/adapters/localfs"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extension implements the git procurer.
type Extension struct {
	cacheDir string
	git      runner
}

// New creates the extension with the given worktree cache directory. An
// empty dir defaults to ~/.lode/gitlibs.
func New(cacheDir string) (*Extension, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate home directory")
		}
		cacheDir = filepath.Join(home, ".lode", "gitlibs")
	}
	return &Extension{cacheDir: cacheDir}, nil
}

// repoDir is the bare clone location for a URL, keyed by a hash so
// unrelated URLs never collide.
func (e *Extension) repoDir(url string) string {
	return filepath.Join(e.cacheDir, "_repos", fmt.Sprintf("%016x", xxhash.Sum64String(url)))
}

// worktreeDir is the checkout location for one revision of a URL.
func (e *Extension) worktreeDir(url, sha string) string {
	return filepath.Join(e.cacheDir, "libs", fmt.Sprintf("%016x", xxhash.Sum64String(url)), sha)
}

// Canonicalize resolves a tag-only coordinate to its full sha. Remote
// lookups are memoized per session.
func (e *Extension) Canonicalize(ctx context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.Lib, *domain.Coord, error) {
	if coord.URL == "" {
		return "", nil, zerr.With(zerr.New("git coordinate missing url"), "lib", lib.String())
	}
	if coord.SHA == "" && coord.Tag == "" {
		return "", nil, zerr.With(zerr.New("git coordinate missing sha and tag"), "lib", lib.String())
	}
	dup := coord.Clone()
	dup.Procurer = domain.ProcurerGit
	if dup.SHA == "" {
		sha, err := e.resolveTag(ctx, dup.URL, dup.Tag)
		if err != nil {
			return "", nil, zerr.With(err, "lib", lib.String())
		}
		dup.SHA = sha
	}
	return lib, dup, nil
}

func (e *Extension) resolveTag(ctx context.Context, url, tag string) (string, error) {
	resolve := func() (any, error) {
		out, err := e.git.run(ctx, "", "ls-remote", url, "refs/tags/"+tag)
		if err != nil {
			return "", err
		}
		fields := strings.Fields(out)
		if len(fields) == 0 {
			err := zerr.With(zerr.New("tag not found"), "url", url)
			return "", zerr.With(err, "tag", tag)
		}
		return fields[0], nil
	}

	if sess := domain.SessionFrom(ctx); sess != nil {
		value, err := sess.Memoize("git:tag:"+url+"#"+tag, resolve)
		if err != nil {
			return "", err
		}
		return value.(string), nil
	}
	value, err := resolve()
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// DepID identifies a git coordinate by its revision sha.
func (e *Extension) DepID(_ domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.CoordID, error) {
	if coord.SHA == "" {
		return "", zerr.New("git coordinate missing sha")
	}
	return domain.CoordID(coord.SHA), nil
}

// ManifestType checks out the revision and classifies the worktree like a
// local root (nested project manifest or bare directory).
func (e *Extension) ManifestType(ctx context.Context, lib domain.Lib, coord *domain.Coord, _ *domain.Manifest) (domain.ManifestInfo, error) {
	root, err := e.ensureWorktree(ctx, coord.URL, coord.SHA)
	if err != nil {
		return domain.ManifestInfo{}, zerr.With(err, "lib", lib.String())
	}
	return localfs.ClassifyRoot(lib, root)
}

// ensureWorktree clones the repository (bare, once per URL) and checks
// the revision out into the shared cache.
func (e *Extension) ensureWorktree(ctx context.Context, url, sha string) (string, error) {
	worktree := e.worktreeDir(url, sha)
	if _, err := os.Stat(worktree); err == nil {
		return worktree, nil
	}

	repo := e.repoDir(url)
	if _, err := os.Stat(repo); err != nil {
		if err := os.MkdirAll(filepath.Dir(repo), 0o755); err != nil {
			return "", zerr.Wrap(err, "failed to create cache directory")
		}
		if _, err := e.git.run(ctx, "", "clone", "--bare", url, repo); err != nil {
			return "", err
		}
	} else if _, err := e.git.run(ctx, repo, "cat-file", "-e", sha+"^{commit}"); err != nil {
		// Revision unknown locally; refresh the clone.
		if _, err := e.git.run(ctx, repo, "fetch", "origin"); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(worktree), 0o755); err != nil {
		return "", zerr.Wrap(err, "failed to create worktree directory")
	}
	if _, err := e.git.run(ctx, repo, "worktree", "add", "--detach", worktree, sha); err != nil {
		return "", err
	}
	return worktree, nil
}

// CompareVersions orders git coordinates only where an order exists:
// identical shas are equal, and two tagged revisions compare by semantic
// tag. Anything else is not comparable.
func (e *Extension) CompareVersions(lib domain.Lib, a, b *domain.Coord, _ *domain.Manifest) (int, error) {
	if a.SHA == b.SHA {
		return 0, nil
	}
	if a.Tag != "" && b.Tag != "" {
		av, aerr := semver.NewVersion(strings.TrimPrefix(a.Tag, "v"))
		bv, berr := semver.NewVersion(strings.TrimPrefix(b.Tag, "v"))
		if aerr == nil && berr == nil {
			return av.Compare(bv), nil
		}
	}
	err := zerr.With(zerr.New("git revisions are not comparable"), "lib", lib.String())
	err = zerr.With(err, "a", a.SHA)
	return 0, zerr.With(err, "b", b.SHA)
}

// CoordSummary renders the url with the short sha.
func (e *Extension) CoordSummary(_ domain.Lib, coord *domain.Coord) string {
	sha := coord.SHA
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return coord.URL + "@" + sha
}

var _ ports.Extension = (*Extension)(nil)
