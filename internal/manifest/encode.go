package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"k8s.io/apimachinery/pkg/runtime"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
	"sigs.k8s.io/yaml"
)

// Separator joins documents in the output stream.
const Separator = "---\n"

// Encode marshals objects into one YAML stream, in the given order.
func Encode[T runtime.Object](objs ...T) ([]byte, error) {
	var buf bytes.Buffer
	for i, obj := range objs {
		doc, err := EncodeObject(obj)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteString(Separator)
		}
		buf.Write(doc)
	}
	return buf.Bytes(), nil
}

// EncodeObject marshals a single object. The apiVersion and kind are looked up
// in the client-go scheme, so callers never have to fill TypeMeta.
func EncodeObject(obj runtime.Object) ([]byte, error) {
	gvk, err := apiutil.GVKForObject(obj, scheme.Scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve kind: %w", err)
	}

	u, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", gvk.Kind, err)
	}
	delete(u, "status")
	prune(u)
	u["apiVersion"] = gvk.GroupVersion().String()
	u["kind"] = gvk.Kind

	out, err := yaml.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", gvk.Kind, err)
	}
	return out, nil
}

// prune drops nil values and empty maps or slices, depth first.
func prune(m map[string]any) {
	for k, v := range m {
		if pruned(v) {
			delete(m, k)
		}
	}
}

func pruned(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		prune(t)
		return len(t) == 0
	case []any:
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				prune(m)
			}
		}
		return len(t) == 0
	}
	return false
}

// Decode parses a YAML stream into typed objects registered in the client-go
// scheme. Empty documents are skipped.
func Decode(data []byte) ([]runtime.Object, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))
	decoder := scheme.Codecs.UniversalDeserializer()

	var objs []runtime.Object
	for {
		doc, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		obj, _, err := decoder.Decode(doc, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", len(objs)+1, err)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}
