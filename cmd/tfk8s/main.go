// Package main is the entry point for the tfk8s CLI.
//
// tfk8s prints Kubernetes manifests for a distributed TensorFlow job made of
// worker and parameter server replicas. Every replica learns its peers from
// a cluster spec passed on its command line; the manifests give each replica
// the stable DNS name that spec refers to.
//
// Typical usage:
//
//	tfk8s --num_workers 4 --num_parameter_servers 2 | kubectl apply -f -
package main

import (
	"fmt"
	"os"

	"github.com/imamik/tfk8s/cmd/tfk8s/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
