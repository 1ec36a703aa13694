package manifest

import (
	"bytes"
	"fmt"

	"github.com/imamik/tfk8s/internal/config"
)

// Renderer turns a validated topology into the complete manifest.
type Renderer interface {
	Render(t config.Topology) ([]byte, error)
}

// TypedRenderer renders from k8s.io/api objects.
type TypedRenderer struct{}

// Render implements Renderer.
func (TypedRenderer) Render(t config.Topology) ([]byte, error) {
	return Render(t)
}

// Render builds and encodes the worker job followed by the parameter server job.
func Render(t config.Topology) ([]byte, error) {
	blocks := make([][]byte, 0, 2)
	for _, p := range JobsFor(t) {
		block, err := RenderJob(p)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s job: %w", p.Job, err)
		}
		blocks = append(blocks, block)
	}
	return Join(blocks...), nil
}

// RenderJob encodes the objects of a single job.
func RenderJob(p JobParams) ([]byte, error) {
	return Encode(Objects(p)...)
}

// Join concatenates YAML streams with a document separator.
func Join(blocks ...[]byte) []byte {
	return bytes.Join(blocks, []byte(Separator))
}
