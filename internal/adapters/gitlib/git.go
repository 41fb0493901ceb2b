package gitlib

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// runner executes git commands against a working directory. The working
// directory is always passed explicitly; nothing relies on the process
// current directory.
type runner struct{}

func (runner) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //nolint:gosec // fixed executable
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		werr := zerr.With(zerr.Wrap(err, "git command failed"), "args", strings.Join(args, " "))
		return "", zerr.With(werr, "stderr", strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
