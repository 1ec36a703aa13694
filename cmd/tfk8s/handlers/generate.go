package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/tfk8s/internal/helm"
	"github.com/imamik/tfk8s/internal/logging"
	"github.com/imamik/tfk8s/internal/manifest"
)

// Renderer back-ends selectable with --renderer.
const (
	RendererTyped = "typed"
	RendererChart = "chart"
)

// GenerateOptions configures a manifest render.
type GenerateOptions struct {
	Topology TopologyOptions

	// Renderer is RendererTyped or RendererChart.
	Renderer string

	// ChartPath replaces the embedded chart; implies RendererChart.
	ChartPath string

	// ValuesPath is a YAML file of chart values layered over the per-job
	// values. Only valid with RendererChart.
	ValuesPath string

	// OutputPath receives the manifest instead of the command's output stream.
	OutputPath string
}

var (
	// newChartRenderer creates the embedded-chart renderer.
	newChartRenderer = func(overrides helm.Values) (manifest.Renderer, error) {
		r, err := helm.NewRenderer()
		if err != nil {
			return nil, err
		}
		return r.WithOverrides(overrides), nil
	}

	// newChartRendererFromPath creates a renderer for a chart on disk.
	newChartRendererFromPath = func(path string, overrides helm.Values) (manifest.Renderer, error) {
		r, err := helm.NewRendererFromPath(path)
		if err != nil {
			return nil, err
		}
		return r.WithOverrides(overrides), nil
	}

	// readFile reads a values file (for testing injection).
	readFile = os.ReadFile

	// writeFile writes data to a file (for testing injection).
	writeFile = os.WriteFile

	// isTerminal reports whether w is an interactive terminal.
	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
)

// Generate renders the manifest for the requested topology.
//
// The manifest is rendered completely before anything is written, so a
// failure leaves out (or OutputPath) untouched.
func Generate(ctx context.Context, out io.Writer, opts GenerateOptions) error {
	log := logging.FromContext(ctx).WithName("generate")

	topo, err := resolveTopology(opts.Topology)
	if err != nil {
		return err
	}
	log.V(1).Info("resolved topology",
		"workers", topo.Workers,
		"parameterServers", topo.ParameterServers,
		"port", topo.Port,
		"image", topo.Image,
		"namespace", topo.Namespace,
		"addressing", string(topo.Addressing),
		"loadBalancer", topo.RequestLoadBalancer)

	renderer, name, err := selectRenderer(ctx, opts)
	if err != nil {
		return err
	}

	data, err := renderer.Render(topo)
	if err != nil {
		return fmt.Errorf("failed to render manifest: %w", err)
	}
	log.V(1).Info("rendered manifest", "renderer", name, "bytes", len(data))

	if opts.OutputPath != "" {
		if err := writeFile(opts.OutputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		log.Info("manifest written", "path", opts.OutputPath)
		return nil
	}

	if isTerminal(out) {
		log.Info("writing manifest to the terminal; pipe it into 'kubectl apply -f -' to create the job")
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func selectRenderer(ctx context.Context, opts GenerateOptions) (manifest.Renderer, string, error) {
	if opts.ChartPath != "" && opts.Renderer != "" && opts.Renderer != RendererChart {
		return nil, "", fmt.Errorf("--chart requires --renderer %s, got %q", RendererChart, opts.Renderer)
	}
	if opts.ValuesPath != "" && opts.ChartPath == "" && opts.Renderer != RendererChart {
		return nil, "", fmt.Errorf("--values requires --renderer %s", RendererChart)
	}

	switch {
	case opts.ChartPath != "" || opts.Renderer == RendererChart:
		overrides, err := loadValues(ctx, opts.ValuesPath)
		if err != nil {
			return nil, "", err
		}
		var r manifest.Renderer
		if opts.ChartPath != "" {
			r, err = newChartRendererFromPath(opts.ChartPath, overrides)
		} else {
			r, err = newChartRenderer(overrides)
		}
		if err != nil {
			return nil, "", err
		}
		return r, RendererChart, nil
	case opts.Renderer == "" || opts.Renderer == RendererTyped:
		return manifest.TypedRenderer{}, RendererTyped, nil
	default:
		return nil, "", fmt.Errorf("unknown renderer %q: must be %q or %q", opts.Renderer, RendererTyped, RendererChart)
	}
}

// loadValues reads chart value overrides; an empty path means none.
func loadValues(ctx context.Context, path string) (helm.Values, error) {
	if path == "" {
		return nil, nil
	}
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}
	values, err := helm.FromYAML(data)
	if err != nil {
		return nil, err
	}
	if err := helm.CheckOverrides(values); err != nil {
		return nil, fmt.Errorf("invalid values file %s: %w", path, err)
	}

	if log := logging.FromContext(ctx).V(2); log.Enabled() {
		if y, err := values.ToYAML(); err == nil {
			log.Info("chart value overrides", "path", path, "values", string(y))
		}
	}
	return values, nil
}
