package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Topology
	}{
		{
			name:     "empty document keeps defaults",
			input:    "",
			expected: Default(),
		},
		{
			name: "partial document",
			input: `
workers: 4
image: my/tf:latest
`,
			expected: func() Topology {
				t := Default()
				t.Workers = 4
				t.Image = "my/tf:latest"
				return t
			}(),
		},
		{
			name: "full document",
			input: `
workers: 8
parameterServers: 3
port: 3333
image: tf/server:2.15
requestLoadBalancer: true
namespace: training
clusterDomain: corp.internal
addressing: short
`,
			expected: Topology{
				Workers:             8,
				ParameterServers:    3,
				Port:                3333,
				Image:               "tf/server:2.15",
				RequestLoadBalancer: true,
				Namespace:           "training",
				ClusterDomain:       "corp.internal",
				Addressing:          AddressingShort,
			},
		},
		{
			name: "blank strings fall back to defaults",
			input: `
image: ""
namespace: ""
`,
			expected: Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestParse_ExplicitZeroIsKept(t *testing.T) {
	got, err := Parse([]byte("workers: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Workers)
	assert.ErrorIs(t, got.Validate(), ErrInvalidReplicaCount)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("workers: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parameterServers: 2\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ParameterServers)
	assert.Equal(t, DefaultWorkers, got.Workers)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read topology file")
}
