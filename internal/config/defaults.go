package config

// RCFileName is the project-local configuration file, read from the
// workspace root.
const RCFileName = ".dazelrc"

// Configuration keys. Environment variables use the same names and
// supersede the file per key.
const (
	KeyComposeFile = "DAZEL_DOCKER_COMPOSE_FILE"
	KeyPorts       = "DAZEL_PORTS"
	KeyEnvVars     = "DAZEL_ENV_VARS"
	KeyPrivileged  = "DAZEL_DOCKER_RUN_PRIVILEGED"
	KeyBazelRCFile = "DAZEL_BAZEL_RC_FILE"
	KeyUser        = "DAZEL_USER"
)

// knownKeys is the set of recognized configuration keys. Assignments to
// any other key produce a warning, not an error.
var knownKeys = map[string]bool{
	KeyComposeFile: true,
	KeyPorts:       true,
	KeyEnvVars:     true,
	KeyPrivileged:  true,
	KeyBazelRCFile: true,
	KeyUser:        true,
}

// keyOrder fixes the order in which keys are overlaid and reported.
var keyOrder = []string{
	KeyComposeFile,
	KeyPorts,
	KeyEnvVars,
	KeyPrivileged,
	KeyBazelRCFile,
	KeyUser,
}

// defaultConfig returns the builtin-default layer: everything empty or
// false. The compose file has no usable default and is validated after
// all layers are applied.
func defaultConfig(workspaceRoot string) Config {
	return Config{
		WorkspaceRoot: workspaceRoot,
	}
}
