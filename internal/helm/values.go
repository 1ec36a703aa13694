package helm

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/tfk8s/internal/manifest"
	"github.com/imamik/tfk8s/internal/util/labels"
)

// ErrTopologyValue is returned for overrides that set a value derived from
// the topology.
var ErrTopologyValue = errors.New("value is set by the topology")

// topologyKeys are the keys JobValues fills. They must agree with the
// cluster spec, so overrides may not touch them.
var topologyKeys = []string{"job", "namespace", "replicas", "port", "image", "clusterSpec", "managedBy", "external"}

// Values represents helm chart values as a map.
type Values map[string]any

// Merge combines multiple Values maps with later maps taking precedence.
func Merge(valueMaps ...Values) Values {
	result := make(Values)
	for _, m := range valueMaps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// ToMap converts nested Values into plain maps, which is what Helm's value
// coalescing expects.
func (v Values) ToMap() map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = toPlain(val)
	}
	return out
}

func toPlain(v any) any {
	switch t := v.(type) {
	case Values:
		return t.ToMap()
	case map[string]any:
		return Values(t).ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = toPlain(item)
		}
		return out
	}
	return v
}

// ToYAML converts values to YAML bytes.
func (v Values) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(v.ToMap()); err != nil {
		return nil, fmt.Errorf("failed to encode values to YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses YAML bytes into Values.
func FromYAML(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse YAML values: %w", err)
	}
	return values, nil
}

// JobValues maps one job onto the chart's values.
func JobValues(p manifest.JobParams) Values {
	return Values{
		"job":         p.Job,
		"namespace":   p.Namespace,
		"replicas":    p.Replicas,
		"port":        p.Port,
		"image":       p.Image,
		"clusterSpec": p.ClusterSpec,
		"managedBy":   labels.ManagedByTfk8s,
		"external":    p.External,
	}
}

// CheckOverrides rejects overrides that set any key owned by JobValues.
// Only chart-only keys such as shared.* may be overridden.
func CheckOverrides(v Values) error {
	var owned []string
	for _, k := range topologyKeys {
		if _, ok := v[k]; ok {
			owned = append(owned, k)
		}
	}
	if len(owned) > 0 {
		return fmt.Errorf("%w: %s; use the command-line flags instead", ErrTopologyValue, strings.Join(owned, ", "))
	}
	return nil
}
