package docker

import (
	"context"
	"errors"
	"os/exec"
)

// ErrNoRuntime is returned when neither the docker CLI nor a compose
// command can be found.
var ErrNoRuntime = errors.New("no container runtime found (need docker with the compose plugin, or docker-compose)")

// Binary is the container runtime CLI used for inspect and exec.
const Binary = "docker"

// DetectCompose finds a working compose command, preferring the modern
// `docker compose` plugin over the legacy docker-compose binary. The
// candidate is verified by actually running its version sub-command,
// not just finding it on PATH.
func DetectCompose(ctx context.Context, runner Runner) ([]string, error) {
	if _, err := exec.LookPath(Binary); err == nil {
		if _, err := runner.Run(ctx, nil, Binary, "compose", "version"); err == nil {
			return []string{Binary, "compose"}, nil
		}
	}
	if _, err := exec.LookPath("docker-compose"); err == nil {
		if _, err := runner.Run(ctx, nil, "docker-compose", "version"); err == nil {
			return []string{"docker-compose"}, nil
		}
	}
	return nil, ErrNoRuntime
}

// LegacyCompose reports whether a detected compose command is the
// standalone v1 docker-compose binary. v1 joins default container names
// with underscores where the v2 plugin uses dashes.
func LegacyCompose(composeCmd []string) bool {
	return len(composeCmd) == 1 && composeCmd[0] == "docker-compose"
}
