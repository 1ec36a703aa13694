// Package labels provides consistent labeling utilities for TensorFlow job resources.
package labels

// Standard label keys for job resources.
const (
	// KeyJob identifies which job (worker, ps) a resource belongs to.
	// Kept as the bare "tf" key so existing selectors keep matching.
	KeyJob = "tf"

	// KeyManagedBy identifies the tool that generated the manifest
	KeyManagedBy = "app.kubernetes.io/managed-by"

	// KeyPodName is set by the StatefulSet controller on every replica
	KeyPodName = "statefulset.kubernetes.io/pod-name"
)

// Job values
const (
	JobWorker          = "worker"
	JobParameterServer = "ps"
)

// ManagedBy values
const (
	ManagedByTfk8s = "tfk8s"
)

// LabelBuilder provides a fluent interface for building resource labels.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a new label builder with the job label pre-set.
func NewLabelBuilder(job string) *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyJob: job,
		},
	}
}

// WithManagedBy sets who manages this resource.
func (lb *LabelBuilder) WithManagedBy(manager string) *LabelBuilder {
	lb.labels[KeyManagedBy] = manager
	return lb
}

// WithPodName pins the label set to a single StatefulSet replica.
func (lb *LabelBuilder) WithPodName(pod string) *LabelBuilder {
	lb.labels[KeyPodName] = pod
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	result := make(map[string]string, len(lb.labels))
	for k, v := range lb.labels {
		result[k] = v
	}
	return result
}

// Selector returns the selector labels for all pods of a job.
func Selector(job string) map[string]string {
	return NewLabelBuilder(job).Build()
}
