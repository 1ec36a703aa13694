// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"fmt"

	"github.com/imamik/tfk8s/internal/config"
)

// TopologyOptions carries the topology inputs gathered by a command.
type TopologyOptions struct {
	// ConfigPath is an optional YAML topology file.
	ConfigPath string

	// Flags holds every flag value, defaults included.
	Flags config.Topology

	// Set names the flags given explicitly on the command line. Only these
	// override values from ConfigPath.
	Set map[string]bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads a topology from file (for testing injection).
	loadConfigFile = config.LoadFile
)

// resolveTopology layers explicit flags over the topology file (or over the
// defaults when there is none) and validates the result.
func resolveTopology(opts TopologyOptions) (config.Topology, error) {
	if opts.ConfigPath == "" {
		t := opts.Flags
		if err := t.Validate(); err != nil {
			return config.Topology{}, err
		}
		return t, nil
	}

	loaded, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return config.Topology{}, fmt.Errorf("failed to load config: %w", err)
	}
	t := *loaded
	f := opts.Flags

	if opts.Set[config.FlagNumWorkers] {
		t.Workers = f.Workers
	}
	if opts.Set[config.FlagNumParameterServers] {
		t.ParameterServers = f.ParameterServers
	}
	if opts.Set[config.FlagGRPCPort] {
		t.Port = f.Port
	}
	if opts.Set[config.FlagDockerImage] {
		t.Image = f.Image
	}
	if opts.Set[config.FlagRequestLoadBalancer] {
		t.RequestLoadBalancer = f.RequestLoadBalancer
	}
	if opts.Set[config.FlagNamespace] {
		t.Namespace = f.Namespace
	}
	if opts.Set[config.FlagClusterDomain] {
		t.ClusterDomain = f.ClusterDomain
	}
	if opts.Set[config.FlagAddressing] {
		t.Addressing = f.Addressing
	}

	if err := t.Validate(); err != nil {
		return config.Topology{}, err
	}
	return t, nil
}
