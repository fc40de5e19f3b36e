// Package contracts defines interfaces that decouple the HTTP layer from the subprocess implementation.
package contracts

import "io"

// MediaStream is the live output of one running extraction tool process.
type MediaStream interface {
	// Output is the tool's stdout, readable chunk-by-chunk as it is produced.
	// Diagnostic (stderr) bytes never appear here.
	Output() io.Reader

	// Wait blocks until the process has exited and returns its exit code.
	// The result is computed once; repeat calls return the same code.
	// Call after Output is drained or after Terminate.
	Wait() int

	// Terminate forcibly kills the process. Idempotent, safe after natural exit.
	Terminate()
}

// Invoker runs the media extraction tool.
type Invoker interface {
	// RunCaptured runs the tool to completion and returns its stdout bytes.
	// A non-zero exit yields an error carrying the captured stderr text.
	RunCaptured(name string, args []string) ([]byte, error)

	// RunStreaming starts the tool and returns its live output stream.
	RunStreaming(name string, args []string) (MediaStream, error)
}
