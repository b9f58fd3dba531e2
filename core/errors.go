package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when an agent is added to a mapping
	// container whose id is already present.
	ErrDuplicateID = errors.New("agent id already present")

	// ErrIDSequence is returned when an agent added to a sequence container
	// does not carry the next contiguous id (count + 1).
	ErrIDSequence = errors.New("agent id breaks container sequence")

	// ErrUnsupportedOperation is returned for operations a container variant
	// does not support, e.g. removal from a sequence container.
	ErrUnsupportedOperation = errors.New("operation not supported by container")

	// ErrUnsupportedMetric is returned when a fixed-radius offset set is
	// requested under a metric that admits no well-defined one on an integer
	// lattice (Euclidean).
	ErrUnsupportedMetric = errors.New("metric admits no fixed-radius offset set")

	// ErrInvalidArgument is returned for invalid caller inputs such as a
	// non-positive walk distance or a zero-magnitude velocity rescale.
	ErrInvalidArgument = errors.New("invalid argument")
)

// SchemaError reports that an agent type is structurally incompatible with
// the model's configured space. It is fatal and raised at construction time.
type SchemaError struct {
	// AgentType is the concrete type name of the offending agent shape.
	AgentType string
	// Reason describes the incompatibility.
	Reason string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("agent type %s incompatible with space: %s", e.AgentType, e.Reason)
}
