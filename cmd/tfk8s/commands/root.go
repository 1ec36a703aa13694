// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/tfk8s/cmd/tfk8s/handlers"
	"github.com/imamik/tfk8s/internal/logging"
)

// Root returns the root command for the tfk8s CLI.
//
// Running the root command itself renders the manifest; subcommands cover
// the cluster spec alone and housekeeping.
func Root() *cobra.Command {
	var tf topologyFlags
	var opts handlers.GenerateOptions
	var verbose int

	cmd := &cobra.Command{
		Use:   "tfk8s",
		Short: "Generate Kubernetes manifests for distributed TensorFlow",
		Long: `Generate Kubernetes manifests for a distributed TensorFlow job.

The output holds, for the worker job and then the parameter server job, a
headless Service and a StatefulSet. Every replica receives the full cluster
spec on its command line, addressed by stable per-replica DNS names.

Apply the output directly:

  tfk8s --num_workers 4 --num_parameter_servers 2 | kubectl apply -f -
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(logging.IntoContext(cmd.Context(), logging.New(cmd.ErrOrStderr(), verbose)))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Topology = tf.options(cmd)
			if (opts.ChartPath != "" || opts.ValuesPath != "") && !cmd.Flags().Changed("renderer") {
				opts.Renderer = handlers.RendererChart
			}
			return handlers.Generate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	tf.bind(cmd)
	cmd.Flags().StringVar(&opts.Renderer, "renderer", handlers.RendererTyped, "Manifest back-end: typed or chart")
	cmd.Flags().StringVar(&opts.ChartPath, "chart", "", "Render with the Helm chart at this path instead of the built-in one (implies --renderer chart)")
	cmd.Flags().StringVarP(&opts.ValuesPath, "values", "f", "", "YAML file of chart values layered over the generated ones (chart renderer only)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the manifest to this file instead of stdout")
	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase diagnostic output on stderr (repeatable)")

	cmd.AddCommand(ClusterSpec())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
