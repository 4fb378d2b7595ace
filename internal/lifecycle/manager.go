// Package lifecycle brings the declared build environment to a ready
// state before commands proxy through it, and tears it down on request.
package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dazelbuild/dazel/internal/compose"
	"github.com/dazelbuild/dazel/internal/config"
	"github.com/dazelbuild/dazel/internal/docker"
)

// State is the observed build environment state. It is derived live from
// the runtime on every EnsureUp and never persisted.
type State int

const (
	Stopped State = iota
	Starting
	Ready
	Degraded
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Starting:
		return "starting"
	case Ready:
		return "ready"
	case Degraded:
		return "degraded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	// DefaultPollInterval is the delay between readiness probes.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultReadyTimeout bounds one readiness polling window.
	DefaultReadyTimeout = 60 * time.Second

	// DefaultMaxRestarts bounds how many times a degraded environment is
	// brought up again within a single invocation.
	DefaultMaxRestarts = 2
)

// Manager ensures the compose-declared environment is up and the
// primary container responsive. It holds no lock on the runtime and
// tolerates concurrent external mutation: a container already running
// is success, not a conflict.
type Manager struct {
	client *docker.Client
	env    *compose.Environment
	cfg    config.Config

	PollInterval time.Duration
	ReadyTimeout time.Duration
	MaxRestarts  int

	state State
}

// NewManager creates a Manager with default timing.
func NewManager(client *docker.Client, env *compose.Environment, cfg config.Config) *Manager {
	return &Manager{
		client:       client,
		env:          env,
		cfg:          cfg,
		PollInterval: DefaultPollInterval,
		ReadyTimeout: DefaultReadyTimeout,
		MaxRestarts:  DefaultMaxRestarts,
	}
}

// State returns the last observed environment state.
func (m *Manager) State() State { return m.state }

// EnsureUp is idempotent: if the primary container is already running
// and responsive it performs no start operation. Otherwise it brings
// the declared containers up detached and polls until the primary can
// execute commands, restarting a bounded number of times on failure.
func (m *Manager) EnsureUp(ctx context.Context) error {
	primary := m.env.PrimaryContainer()

	// Inspect failures below are indistinguishable from a container that
	// does not exist yet, so an unreachable daemon is ruled out up front
	// where it can be reported as such.
	if err := m.client.Ping(ctx); err != nil {
		return &Error{Kind: RuntimeUnavailable, Message: "checking runtime daemon", Err: err}
	}

	running, err := m.client.ContainerRunning(ctx, primary)
	if err != nil {
		return &Error{Kind: RuntimeUnavailable, Message: "querying container state", Err: err}
	}

	var lastErr error
	for attempt := 0; attempt <= m.MaxRestarts; attempt++ {
		if attempt > 0 {
			log.Printf("build environment degraded, restarting (attempt %d of %d)", attempt, m.MaxRestarts)
		}

		m.state = Starting
		if !running {
			if err := m.client.ComposeUp(ctx, m.env.Path, compose.ProjectName, m.composeEnv()); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				m.state = Degraded
				lastErr = &Error{Kind: RuntimeUnavailable, Message: "bringing containers up", Err: err}
				continue
			}
		}

		if err := m.awaitReady(ctx, primary); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.state = Degraded
			lastErr = err
			// A restart goes through compose up again even if the
			// container reported running before.
			running = false
			continue
		}

		m.state = Ready
		return nil
	}

	m.state = Stopped
	if lastErr != nil {
		return lastErr
	}
	return &Error{Kind: Timeout, Message: fmt.Sprintf("container %s never became ready", primary)}
}

// awaitReady polls the primary container at a fixed interval within a
// bounded window. Ready means running per the runtime and responsive to
// a no-op exec. Cancellation is checked between attempts so an
// interrupt during startup is honored promptly.
func (m *Manager) awaitReady(ctx context.Context, container string) error {
	deadline := time.Now().Add(m.ReadyTimeout)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		running, err := m.client.ContainerRunning(ctx, container)
		if err == nil && running {
			if err := m.client.ProbeContainer(ctx, container); err == nil {
				return nil
			}
		}

		if time.Now().After(deadline) {
			return &Error{
				Kind:    Timeout,
				Message: fmt.Sprintf("container %s not ready after %s", container, m.ReadyTimeout),
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.PollInterval):
		}
	}
}

// Teardown stops the declared containers. Failures are logged rather
// than returned: teardown runs best-effort, typically during unwinding.
func (m *Manager) Teardown(ctx context.Context) {
	if err := m.client.ComposeDown(ctx, m.env.Path, compose.ProjectName); err != nil {
		log.Printf("teardown failed (ignored): %v", err)
		return
	}
	m.state = Stopped
}

// composeEnv exports the configured ports and extra environment to the
// compose subprocess, where the descriptor can pick them up through
// variable substitution. Ports are a property of the running containers,
// so they apply here rather than per proxied command.
func (m *Manager) composeEnv() []string {
	var env []string
	if len(m.cfg.Ports) > 0 {
		env = append(env, config.KeyPorts+"="+strings.Join(m.cfg.Ports, ","))
	}
	if len(m.cfg.EnvVars) > 0 {
		env = append(env, config.KeyEnvVars+"="+strings.Join(m.cfg.EnvVars, ","))
	}
	return env
}
