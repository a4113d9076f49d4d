package gitlog

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts executing git so parsing can be tested without a repo.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner invokes the git binary in a fixed working directory.
type ExecRunner struct {
	Dir string
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errb.String())
		if msg == "" {
			msg = err.Error()
		}
		sub := "<no-args>"
		if len(args) > 0 {
			sub = args[0]
		}
		return "", fmt.Errorf("git %s: %s", sub, msg)
	}
	return out.String(), nil
}
