package proxy

// In-container paths shared with the compose descriptor. The build
// service must mount the workspace and output directories at these
// locations for results to be visible on the host.
const (
	// CodeMountPoint is where the build container mounts the workspace.
	CodeMountPoint = "/code"

	// ContainerOutputBase is bazel's output base inside the container.
	ContainerOutputBase = "/root/.cache/bazel/_bazel_dazel"

	// ContainerOutputUserRoot is bazel's output user root inside the container.
	ContainerOutputUserRoot = "/var/bazel/workspace/_bazel_dazel"

	// ContainerBazelBin is the bazel binary inside the container.
	ContainerBazelBin = "/usr/bin/bazel"
)
