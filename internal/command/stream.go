package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"fetcharr/internal/contracts"
	"fetcharr/internal/utils/logging"
)

// Stream is one running command whose stdout is relayed live. Stderr lines
// are drained to the debug log on a side goroutine so they never block the
// process or leak into the output.
type Stream struct {
	name   string
	cmd    *exec.Cmd
	stdout io.ReadCloser

	stderrDone chan struct{}
	killOnce   sync.Once
	waitOnce   sync.Once
	exitCode   int
}

// RunStreaming starts name with args, stdin detached, and returns the live
// stream. The caller owns the process: drain Output then Wait, or Terminate.
func (r *Runner) RunStreaming(name string, args []string) (contracts.MediaStream, error) {
	cmd := exec.Command(name, args...)
	logging.D(1, "Executing command: %v", cmd.String())

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe error: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("command start error: %w", err)
	}

	s := &Stream{
		name:       name,
		cmd:        cmd,
		stdout:     stdout,
		stderrDone: make(chan struct{}),
	}

	go func() {
		defer close(s.stderrDone)
		scanDiagnostics(name, stderr)
	}()

	return s, nil
}

// scanDiagnostics relays stderr lines to the debug log until EOF. The pipe
// must stay drained even when the scanner gives up (e.g. a newline-less
// progress stretch past its line cap), or the process blocks on stderr and
// the stdout relay stalls with it.
func scanDiagnostics(name string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		logging.D(1, "%s: %s", name, scanner.Text())
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
		logging.D(1, "%s stderr read ended: %v", name, err)
	}

	io.Copy(io.Discard, r)
}

// Output returns the command's live stdout. Reads pull straight from the
// pipe, so a slow consumer backpressures the process rather than buffering.
func (s *Stream) Output() io.Reader {
	return s.stdout
}

// Wait reaps the process after the stderr drain finishes and returns the
// exit code, -1 if the process was killed. Computed once.
func (s *Stream) Wait() int {
	s.waitOnce.Do(func() {
		<-s.stderrDone

		err := s.cmd.Wait()
		var exitErr *exec.ExitError
		switch {
		case err == nil:
			s.exitCode = 0
		case errors.As(err, &exitErr):
			s.exitCode = exitErr.ExitCode()
		default:
			s.exitCode = -1
		}
	})
	return s.exitCode
}

// Terminate kills the process immediately. Safe to call repeatedly or after
// the process has already exited.
func (s *Stream) Terminate() {
	s.killOnce.Do(func() {
		if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			logging.D(1, "failed to kill %s (pid %d): %v", s.name, s.cmd.Process.Pid, err)
		}
	})
}
