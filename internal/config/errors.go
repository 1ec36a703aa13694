package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReplicaCount is matched by every *InvalidReplicaCountError.
	ErrInvalidReplicaCount = errors.New("invalid replica count")

	// ErrInvalidTopology wraps every other validation failure.
	ErrInvalidTopology = errors.New("invalid topology")
)

// InvalidReplicaCountError reports a non-positive worker or parameter server count.
type InvalidReplicaCountError struct {
	Flag  string
	Count int
}

func (e *InvalidReplicaCountError) Error() string {
	return fmt.Sprintf("--%s must be greater than 0; received %d", e.Flag, e.Count)
}

// Is makes errors.Is(err, ErrInvalidReplicaCount) hold.
func (e *InvalidReplicaCountError) Is(target error) bool {
	return target == ErrInvalidReplicaCount
}
