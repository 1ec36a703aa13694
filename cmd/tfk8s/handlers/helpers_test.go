package handlers

import (
	"testing"

	"github.com/imamik/tfk8s/internal/config"
)

// saveAndRestoreFactories snapshots every injectable factory and restores it
// when the test finishes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadConfigFile := loadConfigFile
	origNewChartRenderer := newChartRenderer
	origNewChartRendererFromPath := newChartRendererFromPath
	origWriteFile := writeFile
	origIsTerminal := isTerminal
	origReadFile := readFile

	t.Cleanup(func() {
		loadConfigFile = origLoadConfigFile
		newChartRenderer = origNewChartRenderer
		newChartRendererFromPath = origNewChartRendererFromPath
		writeFile = origWriteFile
		isTerminal = origIsTerminal
		readFile = origReadFile
	})
}

func defaultOptions() TopologyOptions {
	return TopologyOptions{Flags: config.Default()}
}
