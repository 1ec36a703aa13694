// Package helm renders TensorFlow job manifests from a Helm chart.
//
// The chart embedded in this package mirrors the objects built by the
// manifest package. It is rendered once per job with the Helm template
// engine, and every resulting document is decoded into its typed object and
// re-encoded through manifest.Encode, so both back-ends emit identical bytes
// for the same topology. A chart directory on disk can replace the embedded
// chart to customise the generated objects.
package helm
