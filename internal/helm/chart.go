package helm

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
)

const embeddedChartRoot = "chart"

//go:embed all:chart
var embeddedChart embed.FS

// loadEmbeddedChart loads the chart compiled into the binary.
func loadEmbeddedChart() (*chart.Chart, error) {
	var files []*loader.BufferedFile
	err := fs.WalkDir(embeddedChart, embeddedChartRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := embeddedChart.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := relativeTo(embeddedChartRoot, p)
		if err != nil {
			return err
		}
		files = append(files, &loader.BufferedFile{Name: rel, Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded chart: %w", err)
	}

	ch, err := loader.LoadFiles(files)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded chart: %w", err)
	}
	return ch, nil
}

// loadChartFromPath loads a chart directory or packaged archive from disk.
func loadChartFromPath(chartPath string) (*chart.Chart, error) {
	ch, err := loader.Load(chartPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart from %s: %w", chartPath, err)
	}
	return ch, nil
}

func relativeTo(root, p string) (string, error) {
	prefix := root + "/"
	if len(p) <= len(prefix) || p[:len(prefix)] != prefix {
		return "", fmt.Errorf("%s is outside %s", p, root)
	}
	return path.Clean(p[len(prefix):]), nil
}
