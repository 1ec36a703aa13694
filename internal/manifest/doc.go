// Package manifest builds the Kubernetes objects of a TensorFlow job pair and
// encodes them as a multi-document YAML stream.
//
// Each job gets a headless governing Service and a StatefulSet of the same
// name. When a load balancer is requested the worker job also gets an
// external Service pinned to its first replica. Objects are encoded through
// an unstructured form so that server-populated fields (status, creation
// timestamps) and empty structs never reach the output.
package manifest
