// Package config defines the topology model that drives manifest generation.
//
// A [Topology] is the complete, validated input of one render: replica counts
// for the worker and parameter-server jobs, the gRPC port, the container
// image and a few addressing knobs. It is assembled from command-line flags,
// optionally layered over a YAML file loaded with [LoadFile], and checked
// once with [Topology.Validate] before anything is rendered.
package config
