// Package config resolves dazel's effective configuration from three
// layers: builtin defaults, the project-local .dazelrc file, and DAZEL_*
// environment variables. Precedence is applied per key, environment
// winning over file winning over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the resolved, immutable configuration for one invocation.
// It is passed by value and never mutated after Load returns.
type Config struct {
	// WorkspaceRoot is the absolute path of the Bazel workspace.
	WorkspaceRoot string

	// ComposeFile is the docker-compose descriptor path, relative to the
	// workspace root.
	ComposeFile string

	// Ports are published-port declarations ("interface:container:host"),
	// exported to the compose subprocess at environment start-up.
	Ports []string

	// EnvVars are extra NAME=value pairs injected into every proxied
	// command, in declaration order.
	EnvVars []string

	// Privileged runs the in-container command with --privileged.
	Privileged bool

	// BazelRCFile is an optional bazelrc path relative to the workspace
	// root, passed to the in-container bazel.
	BazelRCFile string

	// User is the optional "user[:group]" to exec as inside the container.
	User string
}

// ComposeFilePath returns the absolute path of the compose descriptor.
func (c Config) ComposeFilePath() string {
	if filepath.IsAbs(c.ComposeFile) {
		return c.ComposeFile
	}
	return filepath.Join(c.WorkspaceRoot, c.ComposeFile)
}

// LookupEnv mirrors os.LookupEnv. Resolve distinguishes an unset
// variable from one set to the empty string: a set-but-empty variable
// still overrides the file layer.
type LookupEnv func(key string) (string, bool)

// Load resolves configuration for the given workspace root using the
// process environment. Returned warnings are non-fatal and should be
// logged by the caller.
func Load(workspaceRoot string) (Config, []string, error) {
	var fileValues map[string]string
	var warnings []string

	rcPath := filepath.Join(workspaceRoot, RCFileName)
	if _, err := os.Stat(rcPath); err == nil {
		var perr error
		fileValues, warnings, perr = parseRCFile(rcPath)
		if perr != nil {
			return Config{}, warnings, perr
		}
	}
	// A missing .dazelrc is fine; the environment alone can configure dazel.

	return Resolve(workspaceRoot, fileValues, os.LookupEnv, warnings)
}

// Resolve merges the three configuration layers and coerces raw string
// values into typed fields. It is a pure function of its inputs, which
// makes the precedence rules directly testable.
func Resolve(workspaceRoot string, fileValues map[string]string, lookupEnv LookupEnv, warnings []string) (Config, []string, error) {
	raw := make(map[string]string, len(keyOrder))
	for key, value := range fileValues {
		raw[key] = value
	}
	for _, key := range keyOrder {
		if value, ok := lookupEnv(key); ok {
			raw[key] = value
		}
	}

	cfg := defaultConfig(workspaceRoot)
	if v, ok := raw[KeyComposeFile]; ok {
		cfg.ComposeFile = v
	}
	if v, ok := raw[KeyPorts]; ok {
		cfg.Ports = parseList(v)
	}
	if v, ok := raw[KeyEnvVars]; ok {
		cfg.EnvVars = parseList(v)
	}
	if v, ok := raw[KeyPrivileged]; ok {
		cfg.Privileged = parseBool(v)
	}
	if v, ok := raw[KeyBazelRCFile]; ok {
		cfg.BazelRCFile = v
	}
	if v, ok := raw[KeyUser]; ok {
		cfg.User = v
	}

	if err := validate(cfg); err != nil {
		return Config{}, warnings, err
	}
	return cfg, warnings, nil
}

// validate checks the single required field: the compose descriptor
// must be set and must exist under the workspace root.
func validate(cfg Config) error {
	if cfg.ComposeFile == "" {
		return &Error{
			Kind:    MissingComposeFile,
			Key:     KeyComposeFile,
			Message: "not set (required, in .dazelrc or the environment)",
		}
	}
	if info, err := os.Stat(cfg.ComposeFilePath()); err != nil || info.IsDir() {
		return &Error{
			Kind:    MissingComposeFile,
			Key:     KeyComposeFile,
			Message: fmt.Sprintf("compose file %s does not exist", cfg.ComposeFilePath()),
		}
	}
	return nil
}
