package helm

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/engine"

	"github.com/imamik/tfk8s/internal/config"
	"github.com/imamik/tfk8s/internal/manifest"
)

const releaseName = "tfk8s"

// Renderer renders job manifests from a loaded chart.
type Renderer struct {
	chart *chart.Chart
	// chart-only values from a values file; the per-job values win
	overrides Values
}

// NewRenderer returns a renderer for the embedded chart.
func NewRenderer() (*Renderer, error) {
	ch, err := loadEmbeddedChart()
	if err != nil {
		return nil, err
	}
	return &Renderer{chart: ch}, nil
}

// NewRendererFromPath returns a renderer for a chart on disk.
func NewRendererFromPath(chartPath string) (*Renderer, error) {
	ch, err := loadChartFromPath(chartPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{chart: ch}, nil
}

// WithOverrides sets extra values for every job render. Keys owned by the
// topology always come from JobValues; see CheckOverrides.
func (r *Renderer) WithOverrides(v Values) *Renderer {
	r.overrides = v
	return r
}

// Render implements manifest.Renderer: worker job first, then parameter servers.
func (r *Renderer) Render(t config.Topology) ([]byte, error) {
	blocks := make([][]byte, 0, 2)
	for _, p := range manifest.JobsFor(t) {
		block, err := r.RenderJob(p)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s job: %w", p.Job, err)
		}
		blocks = append(blocks, block)
	}
	return manifest.Join(blocks...), nil
}

// RenderJob renders the chart for one job and normalises the result through
// the typed encoder.
func (r *Renderer) RenderJob(p manifest.JobParams) ([]byte, error) {
	raw, err := r.renderChart(Merge(r.overrides, JobValues(p)), p.Namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	objs, err := manifest.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered chart: %w", err)
	}
	if len(objs) == 0 {
		return nil, fmt.Errorf("chart %s rendered no objects", r.chart.Name())
	}
	return manifest.Encode(objs...)
}

// renderChart uses the helm engine to render the chart with values.
// Templates are emitted in file-name order; NOTES.txt and empty output are skipped.
func (r *Renderer) renderChart(values Values, namespace string) ([]byte, error) {
	releaseOptions := chartutil.ReleaseOptions{
		Name:      releaseName,
		Namespace: namespace,
		IsInstall: true,
	}

	// Pin a modern Kubernetes version so capability checks in custom charts
	// pick current API versions.
	capabilities := chartutil.DefaultCapabilities.Copy()
	capabilities.KubeVersion.Version = "v1.31.0"
	capabilities.KubeVersion.Major = "1"
	capabilities.KubeVersion.Minor = "31"

	// Chart defaults from values.yaml are coalesced underneath our values here.
	valuesToRender, err := chartutil.ToRenderValues(r.chart, values.ToMap(), releaseOptions, capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare values: %w", err)
	}

	eng := engine.Engine{Strict: true}
	rendered, err := eng.Render(r.chart, valuesToRender)
	if err != nil {
		return nil, fmt.Errorf("failed to render templates: %w", err)
	}

	names := make([]string, 0, len(rendered))
	for name := range rendered {
		names = append(names, name)
	}
	sort.Strings(names)

	var combined bytes.Buffer
	for _, name := range names {
		if path.Base(name) == "NOTES.txt" {
			continue
		}
		trimmed := strings.TrimSpace(rendered[name])
		if trimmed == "" {
			continue
		}
		if combined.Len() > 0 {
			combined.WriteString("\n---\n")
		}
		combined.WriteString(trimmed)
		combined.WriteString("\n")
	}

	return combined.Bytes(), nil
}
