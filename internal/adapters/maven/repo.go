package maven

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// artifactPath returns the repository-layout relative path of an
// artifact file, e.g. org/clojure/clojure/1.12.0/clojure-1.12.0.jar.
func artifactPath(lib domain.Lib, version, classifier, ext string) string {
	group := strings.ReplaceAll(lib.Group(), ".", "/")
	artifact := lib.Base().Artifact()
	name := fmt.Sprintf("%s-%s", artifact, version)
	if classifier != "" {
		name += "-" + classifier
	}
	return filepath.Join(group, artifact, version, name+"."+ext)
}

// repoURLs returns the configured repository base URLs in stable name
// order.
func repoURLs(cfg *domain.Manifest) []string {
	if cfg == nil || len(cfg.MvnRepos) == 0 {
		return nil
	}
	names := make([]string, 0, len(cfg.MvnRepos))
	for name := range cfg.MvnRepos {
		names = append(names, name)
	}
	sort.Strings(names)
	urls := make([]string, 0, len(names))
	for _, name := range names {
		if url := cfg.MvnRepos[name].URL; url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// ensureArtifact downloads the artifact file into the local repository
// cache unless it is already present, trying each configured repository
// in order. It returns the local path.
func (e *Extension) ensureArtifact(ctx context.Context, lib domain.Lib, version, classifier, ext string, cfg *domain.Manifest) (string, error) {
	rel := artifactPath(lib, version, classifier, ext)
	local := filepath.Join(e.cacheDir, rel)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	repos := repoURLs(cfg)
	if len(repos) == 0 {
		return "", zerr.New("no maven repositories configured")
	}

	var lastErr error
	for _, base := range repos {
		url := strings.TrimSuffix(base, "/") + "/" + filepath.ToSlash(rel)
		err := e.fetch(ctx, url, local)
		if err == nil {
			return local, nil
		}
		lastErr = err
	}
	err := zerr.With(zerr.Wrap(lastErr, "artifact not found in any repository"), "lib", lib.String())
	return "", zerr.With(err, "version", version)
}

func (e *Extension) fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to build request")
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(zerr.New("unexpected status"), "status", resp.Status)
		return zerr.With(err, "url", url)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close() //nolint:errcheck,gosec // error path
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "url", url)
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	return os.Rename(tmp.Name(), dest)
}
