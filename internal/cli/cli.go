// Package cli wires dazel's components into its command-line surface.
// Every argument after the program name belongs to bazel and passes
// through verbatim; dazel itself takes no flags of its own so it can
// never shadow a bazel flag.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// ReservedExitCode is returned for configuration, descriptor, lifecycle,
// translation, and start failures. It is docker's own "daemon error"
// code and outside bazel's exit code range, so a proxied build failure
// is always distinguishable from a proxy failure.
const ReservedExitCode = 125

// App is the CLI application with its wired dependencies.
type App struct {
	rootCmd *cobra.Command
	display *display

	// exitCode is the proxied command's exit code, set by the run.
	exitCode int

	version string
}

// New creates the CLI application.
func New() *App {
	app := &App{
		display: newDisplay(os.Stderr),
		version: "dev",
	}
	app.setupRootCmd()
	return app
}

// SetVersion records the build version for diagnostics.
func (a *App) SetVersion(version string) {
	a.version = version
}

// Execute runs the application and returns the process exit code:
// the proxied command's code on success, ReservedExitCode with a
// single-line diagnostic on any earlier-stage failure.
func (a *App) Execute() int {
	if err := a.rootCmd.Execute(); err != nil {
		a.display.Errorf("%v", err)
		return ReservedExitCode
	}
	return a.exitCode
}

func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "dazel <bazel command and arguments>",
		Short: "Run bazel commands in a dockerized build environment",
		Long: `dazel proxies bazel invocations into a docker-compose managed build
container. The environment is brought up on demand and reused across
invocations; all arguments are forwarded to the in-container bazel.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.runProxy(cmd.Context(), args)
			if err != nil {
				return err
			}
			a.exitCode = code
			return nil
		},
	}
}
