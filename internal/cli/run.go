package cli

import (
	"context"
	"os"

	"github.com/dazelbuild/dazel/internal/compose"
	"github.com/dazelbuild/dazel/internal/config"
	"github.com/dazelbuild/dazel/internal/docker"
	"github.com/dazelbuild/dazel/internal/lifecycle"
	"github.com/dazelbuild/dazel/internal/proxy"
	"github.com/dazelbuild/dazel/internal/workspace"
)

// runProxy sequences one invocation: resolve config, locate the
// descriptor, ensure the environment is up, translate the command, and
// execute it. On pre-execution failure nothing is torn down: a
// half-started environment is left for the next invocation to reuse or
// recover.
func (a *App) runProxy(parent context.Context, args []string) (int, error) {
	root, err := workspace.FindFromWd()
	if err != nil {
		return 0, err
	}

	cfg, warnings, err := config.Load(root)
	for _, warning := range warnings {
		a.display.Warnf("%s", warning)
	}
	if err != nil {
		return 0, err
	}

	env, err := compose.Load(cfg.ComposeFilePath())
	if err != nil {
		return 0, err
	}

	// Interrupts during startup cancel the lifecycle context so polling
	// stops promptly. The handler is released before execution, where
	// signals are forwarded to the subordinate instead.
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	handler := NewSignalHandler(cancel)
	handler.Start()
	defer handler.Stop()

	runner := docker.OSRunner{}
	composeCmd, err := docker.DetectCompose(ctx, runner)
	if err != nil {
		return 0, &lifecycle.Error{Kind: lifecycle.RuntimeUnavailable, Message: "locating compose command", Err: err}
	}

	env.LegacyNaming = docker.LegacyCompose(composeCmd)
	a.display.Infof("ensuring %s is ready (dazel %s)", env.PrimaryContainer(), a.version)

	client := docker.NewClient(runner, composeCmd, os.Stderr)
	manager := lifecycle.NewManager(client, env, cfg)
	if err := manager.EnsureUp(ctx); err != nil {
		return 0, err
	}

	inv, err := proxy.Translate(cfg, env.PrimaryContainer(), args, proxy.CurrentTermInfo())
	if err != nil {
		return 0, err
	}

	handler.Stop()
	return proxy.NewExecutor().Run(parent, inv)
}
