package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfk8s/cmd/tfk8s/handlers"
	"github.com/imamik/tfk8s/internal/config"
)

// topologyFlags holds the raw flag values shared by every command that
// needs a topology.
type topologyFlags struct {
	configPath string
	topology   config.Topology
	addressing string
}

// bind registers the topology flags on cmd. Flag names keep the historical
// underscore style so existing invocations keep working.
func (f *topologyFlags) bind(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()

	fs.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML topology file; explicit flags override its values")
	fs.IntVar(&f.topology.Workers, config.FlagNumWorkers, d.Workers, "How many worker pods to run")
	fs.IntVar(&f.topology.ParameterServers, config.FlagNumParameterServers, d.ParameterServers, "How many parameter server pods to run")
	fs.IntVar(&f.topology.Port, config.FlagGRPCPort, d.Port, "GRPC server port")
	fs.StringVar(&f.topology.Image, config.FlagDockerImage, d.Image, "Docker image for the TensorFlow GRPC server")
	fs.BoolVar(&f.topology.RequestLoadBalancer, config.FlagRequestLoadBalancer, d.RequestLoadBalancer,
		"Expose worker 0 on a public IP address via an external load balancer, so clients can run outside the cluster")
	fs.StringVar(&f.topology.Namespace, config.FlagNamespace, d.Namespace, "Namespace the job is deployed to")
	fs.StringVar(&f.topology.ClusterDomain, config.FlagClusterDomain, d.ClusterDomain, "Cluster DNS domain used in replica hostnames")
	fs.StringVar(&f.addressing, config.FlagAddressing, string(d.Addressing), "Replica hostnames in the cluster spec: fqdn or short")
}

// options converts the parsed flags for the handlers package.
func (f *topologyFlags) options(cmd *cobra.Command) handlers.TopologyOptions {
	t := f.topology
	t.Addressing = config.AddressingMode(f.addressing)

	set := make(map[string]bool)
	for _, name := range []string{
		config.FlagNumWorkers,
		config.FlagNumParameterServers,
		config.FlagGRPCPort,
		config.FlagDockerImage,
		config.FlagRequestLoadBalancer,
		config.FlagNamespace,
		config.FlagClusterDomain,
		config.FlagAddressing,
	} {
		if cmd.Flags().Changed(name) {
			set[name] = true
		}
	}

	return handlers.TopologyOptions{
		ConfigPath: f.configPath,
		Flags:      t,
		Set:        set,
	}
}
