// Package command spawns and supervises the external media extraction tool.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"fetcharr/internal/utils/logging"
)

// Runner invokes external commands. It implements contracts.Invoker.
type Runner struct{}

// NewRunner returns a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// ExitError reports a command that ran but exited non-zero, carrying
// whatever the command wrote to stderr.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// RunCaptured runs name with args to completion, stdin detached, buffering
// stdout and stderr separately. Exit 0 returns the stdout bytes; a non-zero
// exit returns an *ExitError. No timeout is imposed at this layer.
func (r *Runner) RunCaptured(name string, args []string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	logging.D(1, "Executing command: %v", cmd.String())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Name:   name,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return stdout.Bytes(), nil
}
