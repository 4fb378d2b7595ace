package docker

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Client wraps the runtime sub-commands dazel needs: compose up/stop/
// down for the declared container set, and inspect/exec against single
// containers. All state is read live from the runtime; nothing is
// cached between calls.
type Client struct {
	runner  Runner
	compose []string // e.g. {"docker", "compose"} or {"docker-compose"}

	// Progress receives compose output so the user can watch containers
	// come up. It must not be the proxied command's stdout.
	Progress io.Writer
}

// NewClient creates a Client using the given compose command, as
// returned by DetectCompose.
func NewClient(runner Runner, composeCmd []string, progress io.Writer) *Client {
	return &Client{runner: runner, compose: composeCmd, Progress: progress}
}

// composeArgs prepends the compose invocation and descriptor file.
func (c *Client) composeArgs(file string, args ...string) (string, []string) {
	full := append([]string{}, c.compose[1:]...)
	full = append(full, "-f", file)
	full = append(full, args...)
	return c.compose[0], full
}

// ComposeUp brings the declared containers up detached. extraEnv is
// exported to the compose subprocess for variable substitution in the
// descriptor (ports, extra build environment).
func (c *Client) ComposeUp(ctx context.Context, file, project string, extraEnv []string) error {
	env := append([]string{"COMPOSE_PROJECT_NAME=" + project}, extraEnv...)
	name, args := c.composeArgs(file, "up", "-d", "--remove-orphans")
	return c.runner.RunStreaming(ctx, env, c.Progress, name, args...)
}

// ComposeStop stops the declared containers without removing them.
func (c *Client) ComposeStop(ctx context.Context, file, project string) error {
	name, args := c.composeArgs(file, "stop")
	return c.runner.RunStreaming(ctx, []string{"COMPOSE_PROJECT_NAME=" + project}, c.Progress, name, args...)
}

// ComposeDown tears the declared containers down.
func (c *Client) ComposeDown(ctx context.Context, file, project string) error {
	name, args := c.composeArgs(file, "down")
	return c.runner.RunStreaming(ctx, []string{"COMPOSE_PROJECT_NAME=" + project}, c.Progress, name, args...)
}

// ContainerRunning reports whether the named container exists and its
// main process is running.
func (c *Client) ContainerRunning(ctx context.Context, container string) (bool, error) {
	out, err := c.runner.Run(ctx, nil, Binary, "inspect", "-f", "{{.State.Running}}", container)
	if err != nil {
		// Inspect fails for containers that don't exist yet; that is a
		// normal pre-up state, not an error.
		return false, nil
	}
	return strings.TrimSpace(out) == "true", nil
}

// ProbeContainer verifies the container can actually execute a command.
// A container can report running while its init is still settling, so
// readiness is defined by a successful no-op exec, not by status alone.
func (c *Client) ProbeContainer(ctx context.Context, container string) error {
	if _, err := c.runner.Run(ctx, nil, Binary, "exec", container, "true"); err != nil {
		return fmt.Errorf("container %s not responsive: %w", container, err)
	}
	return nil
}

// Ping verifies the runtime daemon is reachable at all.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, nil, Binary, "version"); err != nil {
		return fmt.Errorf("container runtime unreachable: %w", err)
	}
	return nil
}
