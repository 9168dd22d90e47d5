package executor

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// ProcessRunner runs external processes. Tests substitute a fake.
type ProcessRunner interface {
	// Run executes path with args and stdin and returns its stdout and stderr.
	Run(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// RealProcessRunner implements ProcessRunner with os/exec.
type RealProcessRunner struct{}

// Run executes a real external process.
func (RealProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin

	stdout, err := cmd.Output()
	if err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			return stdout, exitErr.Stderr, err
		}
		return stdout, nil, err
	}

	return stdout, nil, nil
}
