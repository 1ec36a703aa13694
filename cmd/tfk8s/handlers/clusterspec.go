package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/tfk8s/internal/clusterspec"
	"github.com/imamik/tfk8s/internal/logging"
)

// ClusterSpec prints the encoded cluster spec followed by a newline.
func ClusterSpec(ctx context.Context, out io.Writer, opts TopologyOptions) error {
	topo, err := resolveTopology(opts)
	if err != nil {
		return err
	}

	cs := clusterspec.FromTopology(topo)
	logging.FromContext(ctx).V(1).Info("built cluster spec", "addresses", cs.Size())

	if _, err := fmt.Fprintln(out, cs.String()); err != nil {
		return fmt.Errorf("failed to write cluster spec: %w", err)
	}
	return nil
}
