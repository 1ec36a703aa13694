package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfk8s/cmd/tfk8s/handlers"
)

// ClusterSpec returns the command that prints only the encoded cluster spec.
func ClusterSpec() *cobra.Command {
	var tf topologyFlags

	cmd := &cobra.Command{
		Use:   "clusterspec",
		Short: "Print the cluster spec passed to every TensorFlow server",
		Long: `Print the cluster spec string every replica receives via --cluster_spec.

Jobs are separated by ",", a job name from its addresses by "|" and
addresses by ";". Workers come first, each job in ordinal order.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ClusterSpec(cmd.Context(), cmd.OutOrStdout(), tf.options(cmd))
		},
	}

	tf.bind(cmd)

	return cmd
}
