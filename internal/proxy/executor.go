package proxy

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/dazelbuild/dazel/internal/docker"
)

// Executor runs a translated invocation as a subordinate runtime
// process with the host's standard streams attached. Exactly one
// subordinate is spawned per invocation; there are no retries and no
// timeout, since build durations are unbounded and cancellation is
// signal driven.
type Executor struct {
	// Stdin, Stdout, Stderr are attached to the subordinate. When these
	// are *os.File (the normal case) the descriptors pass through
	// directly; otherwise os/exec copies each stream in its own
	// goroutine, so no stream can block another.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Binary is the runtime CLI to invoke. Tests substitute a shell to
	// exercise stream and exit code handling without a daemon.
	Binary string

	// notify allows tests to substitute signal delivery.
	notify func(c chan<- os.Signal, sig ...os.Signal)
}

// NewExecutor creates an Executor attached to the process's own streams.
func NewExecutor() *Executor {
	return &Executor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Binary: docker.Binary,
	}
}

// Run starts the subordinate, forwards interrupt/terminate signals to
// it until it exits, and returns its exit code unchanged. A non-zero
// subordinate exit is a successful proxy: the code is the result, not
// an error. Only failure to start at all returns an ExecutionError.
func (e *Executor) Run(ctx context.Context, inv Invocation) (int, error) {
	cmd := exec.CommandContext(ctx, e.Binary, inv.Args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		return -1, &ExecutionError{Err: err}
	}

	// Forward termination signals so an interactive or long-running
	// build can be cancelled cleanly instead of orphaned in the
	// container. Forwarding stops when the subordinate exits.
	notify := e.notify
	if notify == nil {
		notify = signal.Notify
	}
	sigs := make(chan os.Signal, 1)
	notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()
	defer func() {
		signal.Stop(sigs)
		close(done)
	}()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, &ExecutionError{Err: err}
}
