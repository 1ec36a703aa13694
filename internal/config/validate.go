package config

import (
	"fmt"
	"math"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the topology and returns the first problem found.
//
// Replica counts are checked first (workers before parameter servers) and
// fail with *InvalidReplicaCountError. The remaining checks only reject
// values Kubernetes itself would refuse; the image reference is not parsed.
func (t *Topology) Validate() error {
	if t.Workers <= 0 {
		return &InvalidReplicaCountError{Flag: FlagNumWorkers, Count: t.Workers}
	}
	if t.ParameterServers <= 0 {
		return &InvalidReplicaCountError{Flag: FlagNumParameterServers, Count: t.ParameterServers}
	}
	// StatefulSet replicas are int32.
	if t.Workers > math.MaxInt32 {
		return fmt.Errorf("%w: --%s must be at most %d; received %d", ErrInvalidTopology, FlagNumWorkers, math.MaxInt32, t.Workers)
	}
	if t.ParameterServers > math.MaxInt32 {
		return fmt.Errorf("%w: --%s must be at most %d; received %d", ErrInvalidTopology, FlagNumParameterServers, math.MaxInt32, t.ParameterServers)
	}

	if errs := validation.IsValidPortNum(t.Port); len(errs) > 0 {
		return invalid(FlagGRPCPort, errs)
	}
	if strings.TrimSpace(t.Image) == "" {
		return fmt.Errorf("%w: --%s must not be empty", ErrInvalidTopology, FlagDockerImage)
	}
	if errs := validation.IsDNS1123Label(t.Namespace); len(errs) > 0 {
		return invalid(FlagNamespace, errs)
	}
	if errs := validation.IsDNS1123Subdomain(t.ClusterDomain); len(errs) > 0 {
		return invalid(FlagClusterDomain, errs)
	}

	switch t.Addressing {
	case AddressingFQDN, AddressingShort:
	default:
		return fmt.Errorf("%w: --%s must be %q or %q; received %q",
			ErrInvalidTopology, FlagAddressing, AddressingFQDN, AddressingShort, t.Addressing)
	}

	return nil
}

func invalid(flag string, errs []string) error {
	return fmt.Errorf("%w: --%s: %s", ErrInvalidTopology, flag, strings.Join(errs, "; "))
}
