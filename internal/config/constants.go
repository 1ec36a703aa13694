package config

// Defaults applied when neither a flag nor the topology file sets a value.
const (
	// DefaultWorkers is the default number of worker replicas.
	DefaultWorkers = 2

	// DefaultParameterServers is the default number of parameter server replicas.
	DefaultParameterServers = 1

	// DefaultPort is the gRPC port every TensorFlow server listens on.
	DefaultPort = 2222

	// DefaultImage is the TensorFlow gRPC test server image.
	DefaultImage = "tensorflow/tf_grpc_test_server"

	// DefaultNamespace is the namespace baked into fully-qualified replica names.
	DefaultNamespace = "default"

	// DefaultClusterDomain is the cluster DNS suffix.
	DefaultClusterDomain = "cluster.local"
)

// Flag names, shared between the CLI and validation messages.
const (
	FlagNumWorkers          = "num_workers"
	FlagNumParameterServers = "num_parameter_servers"
	FlagGRPCPort            = "grpc_port"
	FlagDockerImage         = "docker_image"
	FlagRequestLoadBalancer = "request_load_balancer"
	FlagNamespace           = "namespace"
	FlagClusterDomain       = "cluster_domain"
	FlagAddressing          = "addressing"
)
