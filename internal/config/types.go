package config

// AddressingMode selects how replica hostnames appear in the cluster spec.
type AddressingMode string

const (
	// AddressingFQDN uses the stable per-replica DNS name of the headless service.
	AddressingFQDN AddressingMode = "fqdn"

	// AddressingShort uses bare StatefulSet pod names.
	AddressingShort AddressingMode = "short"
)

// Topology describes one distributed TensorFlow job pair.
type Topology struct {
	Workers             int            `yaml:"workers"`
	ParameterServers    int            `yaml:"parameterServers"`
	Port                int            `yaml:"port"`
	Image               string         `yaml:"image"`
	RequestLoadBalancer bool           `yaml:"requestLoadBalancer"`
	Namespace           string         `yaml:"namespace"`
	ClusterDomain       string         `yaml:"clusterDomain"`
	Addressing          AddressingMode `yaml:"addressing"`
}

// Default returns a topology populated with every default value.
func Default() Topology {
	return Topology{
		Workers:          DefaultWorkers,
		ParameterServers: DefaultParameterServers,
		Port:             DefaultPort,
		Image:            DefaultImage,
		Namespace:        DefaultNamespace,
		ClusterDomain:    DefaultClusterDomain,
		Addressing:       AddressingFQDN,
	}
}

// applyDefaults fills string fields a YAML file explicitly blanked out.
// Replica counts and the port are left alone so that an explicit zero
// still fails validation.
func (t *Topology) applyDefaults() {
	if t.Image == "" {
		t.Image = DefaultImage
	}
	if t.Namespace == "" {
		t.Namespace = DefaultNamespace
	}
	if t.ClusterDomain == "" {
		t.ClusterDomain = DefaultClusterDomain
	}
	if t.Addressing == "" {
		t.Addressing = AddressingFQDN
	}
}
