package helm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/tfk8s/internal/manifest"
)

func TestMerge(t *testing.T) {
	t.Parallel()
	merged := Merge(
		Values{"a": 1, "b": 2},
		Values{"b": 3},
		nil,
		Values{"c": 4},
	)
	assert.Equal(t, Values{"a": 1, "b": 3, "c": 4}, merged)
}

func TestValues_ToMap(t *testing.T) {
	t.Parallel()
	v := Values{
		"nested": Values{"inner": Values{"x": 1}},
		"list":   []any{Values{"y": 2}, "plain"},
	}

	m := v.ToMap()
	nested, ok := m["nested"].(map[string]any)
	require.True(t, ok)
	_, ok = nested["inner"].(map[string]any)
	assert.True(t, ok)

	list, ok := m["list"].([]any)
	require.True(t, ok)
	_, ok = list[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "plain", list[1])
}

func TestValues_YAMLRoundTrip(t *testing.T) {
	t.Parallel()
	v := Values{"job": "ps", "replicas": 3}

	data, err := v.ToYAML()
	require.NoError(t, err)
	assert.Equal(t, "job: ps\nreplicas: 3\n", string(data))

	back, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()
	_, err := FromYAML([]byte("job: [ps"))
	assert.Error(t, err)
}

func TestJobValues(t *testing.T) {
	t.Parallel()
	v := JobValues(manifest.JobParams{
		Job:         "worker",
		Namespace:   "default",
		Replicas:    2,
		Port:        2222,
		Image:       "img",
		ClusterSpec: "worker|a:1,ps|b:1",
		External:    true,
	})

	assert.Equal(t, "worker", v["job"])
	assert.Equal(t, 2, v["replicas"])
	assert.Equal(t, 2222, v["port"])
	assert.Equal(t, "tfk8s", v["managedBy"])
	assert.Equal(t, true, v["external"])
}

func TestCheckOverrides(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		values  Values
		wantErr string
	}{
		{"nil", nil, ""},
		{"chart-only keys", Values{"shared": Values{"hostPath": "/mnt"}}, ""},
		{"replicas", Values{"replicas": 0}, "replicas"},
		{"several", Values{"port": 1, "clusterSpec": "x", "shared": Values{}}, "port, clusterSpec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOverrides(tt.values)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTopologyValue)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
