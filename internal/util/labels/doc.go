// Package labels provides consistent labeling for TensorFlow job resources.
//
// Services select pods by the job label alone, so that label is the only one
// that may ever appear in a selector. Everything else a builder adds is
// informational metadata.
package labels
