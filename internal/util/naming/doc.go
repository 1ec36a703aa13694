// Package naming provides consistent naming functions for TensorFlow job resources.
//
// Every job (worker, ps) owns a Service and a StatefulSet that share the name
// tf-{job}. Replicas follow the StatefulSet ordinal pattern tf-{job}-{index}
// and resolve through the governing Service as
// tf-{job}-{index}.tf-{job}.{namespace}.svc.{domain}.
package naming
