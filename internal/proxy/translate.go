// Package proxy maps a host-side bazel invocation onto an equivalent
// in-container execution and runs it with transparent stdio.
package proxy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dazelbuild/dazel/internal/config"
)

// Invocation is one fully translated command, ready for in-container
// execution. It is derived fresh per invocation and never reused.
type Invocation struct {
	// Container is the target container identifier.
	Container string

	// User is the "user[:group]" the command execs as, empty for the
	// container default.
	User string

	// TTY is whether a pseudo-terminal is allocated in the container.
	TTY bool

	// Env is the environment overlay, NAME=value in declaration order.
	Env []string

	// Args is the complete runtime CLI argument vector after the binary
	// name ("exec", flags, container, command).
	Args []string
}

// Translate builds the Invocation for the user-supplied argument vector.
// It is a pure function: no I/O, no container calls, identical inputs
// produce an identical Invocation.
//
// Policy: privileged mode and the exec user become runtime flags, never
// argv tokens. The extra environment and the bazelrc/output-path flags
// are injected ahead of the user's arguments, but an equivalent flag the
// user passed themselves always wins.
func Translate(cfg config.Config, container string, argv []string, term TermInfo) (Invocation, error) {
	if err := validateUser(cfg.User); err != nil {
		return Invocation{}, err
	}

	env := []string{
		"COLUMNS=" + strconv.Itoa(term.Columns),
		"LINES=" + strconv.Itoa(term.Lines),
		"TERM=" + term.Term,
	}
	env = append(env, cfg.EnvVars...)

	args := []string{"exec", "-i"}
	if term.Interactive {
		args = append(args, "-t")
	}
	if cfg.Privileged {
		args = append(args, "--privileged")
	}
	if cfg.User != "" {
		args = append(args, "--user="+cfg.User)
	}
	for _, e := range env {
		args = append(args, "-e", e)
	}
	args = append(args, "-w", CodeMountPoint, container, ContainerBazelBin)

	// A user-supplied --bazelrc names a different rc file; --noworkspace_rc
	// asks for no rc handling at all. Either one suppresses the injection.
	if cfg.BazelRCFile != "" && !hasStartupFlag(argv, "--bazelrc") && !hasStartupFlag(argv, "--noworkspace_rc") {
		args = append(args, fmt.Sprintf("--bazelrc=%s/%s", CodeMountPoint, cfg.BazelRCFile))
	}
	if !hasStartupFlag(argv, "--output_user_root") {
		args = append(args, "--output_user_root="+ContainerOutputUserRoot)
	}
	if !hasStartupFlag(argv, "--output_base") {
		args = append(args, "--output_base="+ContainerOutputBase)
	}
	args = append(args, argv...)

	return Invocation{
		Container: container,
		User:      cfg.User,
		TTY:       term.Interactive,
		Env:       env,
		Args:      args,
	}, nil
}

// hasStartupFlag reports whether argv already carries the given bazel
// startup flag, either as "--flag=value" or a bare "--flag".
func hasStartupFlag(argv []string, flag string) bool {
	for _, arg := range argv {
		if arg == flag || strings.HasPrefix(arg, flag+"=") {
			return true
		}
	}
	return false
}

// validateUser checks the runtime "user[:group]" syntax.
func validateUser(user string) error {
	if user == "" {
		return nil
	}
	parts := strings.Split(user, ":")
	if len(parts) > 2 {
		return &TranslationError{Field: config.KeyUser, Value: user, Message: "expected user[:group]"}
	}
	for _, part := range parts {
		if part == "" {
			return &TranslationError{Field: config.KeyUser, Value: user, Message: "empty user or group"}
		}
	}
	return nil
}
