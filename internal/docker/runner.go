// Package docker is dazel's subprocess boundary to the container
// runtime. The runtime binary is treated as an opaque external service:
// everything goes through its CLI sub-commands, parsed from text output
// and exit codes.
package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes container runtime commands. The indirection exists so
// lifecycle and readiness logic can be tested against a recorded stub
// instead of a live daemon.
type Runner interface {
	// Run executes the command, capturing stdout. Extra environment
	// variables are appended to the process environment.
	Run(ctx context.Context, env []string, name string, args ...string) (string, error)

	// RunStreaming executes the command with both output streams sent to
	// w. Used for long operations whose progress the user should see,
	// such as compose up.
	RunStreaming(ctx context.Context, env []string, w io.Writer, name string, args ...string) error
}

// OSRunner executes real commands via os/exec.
type OSRunner struct{}

func (OSRunner) Run(ctx context.Context, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s failed: %w\nstderr: %s",
			name, strings.Join(args, " "), err, stderr.String())
	}

	return stdout.String(), nil
}

func (OSRunner) RunStreaming(ctx context.Context, env []string, w io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

var _ Runner = OSRunner{}
