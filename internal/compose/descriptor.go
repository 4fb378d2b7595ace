// Package compose reads just enough of a docker-compose descriptor to
// know which containers it declares and which of them is the primary
// build container. The descriptor's full grammar is the compose
// runtime's concern; dazel passes the file through unmodified.
package compose

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectName is the fixed COMPOSE_PROJECT_NAME dazel runs under, so
	// repeated invocations address the same container set.
	ProjectName = "dazel"

	// BuildContainerName is the container_name the compose file is
	// expected to assign to the build service. A service carrying it is
	// always the primary container.
	BuildContainerName = "dazel_build"
)

// Service is one declared compose service.
type Service struct {
	// Name is the service key under "services:".
	Name string

	// ContainerName is the declared container_name, if any.
	ContainerName string
}

// Environment is the declared container set, with the primary build
// service identified. It carries no runtime state; container status is
// always re-derived live from the runtime.
type Environment struct {
	// Path is the descriptor file path as passed to the compose runtime.
	Path string

	// Services lists the declared services, sorted by name.
	Services []Service

	// Primary is the service that runs bazel.
	Primary Service

	// LegacyNaming selects underscore-separated default container names.
	// Compose v2 joins project, service, and replica with dashes; the
	// standalone docker-compose v1 binary uses underscores.
	LegacyNaming bool
}

// ContainerName returns the runtime container identifier for a service:
// the declared container_name, or the first-replica default name in the
// detected compose flavor's style.
func (e *Environment) ContainerName(s Service) string {
	if s.ContainerName != "" {
		return s.ContainerName
	}
	sep := "-"
	if e.LegacyNaming {
		sep = "_"
	}
	return fmt.Sprintf("%s%s%s%s1", ProjectName, sep, s.Name, sep)
}

// PrimaryContainer returns the runtime identifier of the primary
// build container.
func (e *Environment) PrimaryContainer() string {
	return e.ContainerName(e.Primary)
}

// descriptorFile is the shallow shape parsed out of the compose file.
type descriptorFile struct {
	Services map[string]struct {
		ContainerName string `yaml:"container_name"`
	} `yaml:"services"`
}

// Load reads the descriptor at path and identifies the primary build
// service. The primary is, in order of preference:
//  1. the service whose container_name is exactly BuildContainerName;
//  2. the only service whose name contains "bazel" or is "dazel".
//
// Anything else is a NoPrimaryContainer error: dazel refuses to guess.
func Load(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: NotFound, Path: path, Message: "compose descriptor not found"}
	}

	var parsed descriptorFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, &Error{Kind: Unreadable, Path: path, Message: fmt.Sprintf("unreadable compose descriptor: %v", err)}
	}
	if len(parsed.Services) == 0 {
		return nil, &Error{Kind: NoPrimaryContainer, Path: path, Message: "descriptor declares no services"}
	}

	services := make([]Service, 0, len(parsed.Services))
	for name, svc := range parsed.Services {
		services = append(services, Service{Name: name, ContainerName: svc.ContainerName})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })

	primary, err := findPrimary(services, path)
	if err != nil {
		return nil, err
	}

	return &Environment{Path: path, Services: services, Primary: primary}, nil
}

func findPrimary(services []Service, path string) (Service, error) {
	for _, svc := range services {
		if svc.ContainerName == BuildContainerName {
			return svc, nil
		}
	}

	var candidates []Service
	for _, svc := range services {
		if strings.Contains(svc.Name, "bazel") || svc.Name == "dazel" {
			candidates = append(candidates, svc)
		}
	}
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return Service{}, &Error{
			Kind:    NoPrimaryContainer,
			Path:    path,
			Message: fmt.Sprintf("no service has container_name %q and none is named for bazel", BuildContainerName),
		}
	default:
		names := make([]string, len(candidates))
		for i, svc := range candidates {
			names[i] = svc.Name
		}
		return Service{}, &Error{
			Kind:    NoPrimaryContainer,
			Path:    path,
			Message: fmt.Sprintf("ambiguous primary service (candidates: %s); set container_name %q on one", strings.Join(names, ", "), BuildContainerName),
		}
	}
}
