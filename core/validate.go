package core

import (
	"reflect"

	"github.com/hupe1980/agentsim/logging"
)

// validateAgentType checks one agent prototype against the configured
// space. Structural incompatibilities (wrong or missing position capability,
// mismatched dimensionality) are hard failures returned as *SchemaError.
// Advisory findings (value receivers, velocity shape) are logged as
// warnings when warn is enabled; the model still runs, but most derived
// operations assume in-place mutability.
func validateAgentType(proto Agent, space Space, warn bool, logger logging.Logger) error {
	if proto == nil {
		return &SchemaError{AgentType: "<nil>", Reason: "nil prototype"}
	}

	name := TypeName(proto)

	if reflect.ValueOf(proto).Kind() != reflect.Ptr && warn {
		logger.Warn("agent type is not a pointer; in-place mutation will not be visible to the model", "agent_type", name)
	}

	switch sp := space.(type) {
	case nil:
		return nil
	case GridSpace:
		ga, ok := proto.(GridAgent)
		if !ok {
			if _, continuous := proto.(ContinuousAgent); continuous {
				return &SchemaError{AgentType: name, Reason: "continuous position in a discrete grid space"}
			}
			return &SchemaError{AgentType: name, Reason: "missing grid position (implement GridAgent)"}
		}
		if p := ga.Pos(); len(p) != 0 && len(p) != sp.Dims() {
			return &SchemaError{AgentType: name, Reason: "position dimensionality does not match space"}
		}
	case ContinuousSpace:
		ca, ok := proto.(ContinuousAgent)
		if !ok {
			if _, discrete := proto.(GridAgent); discrete {
				return &SchemaError{AgentType: name, Reason: "discrete position in a continuous space"}
			}
			return &SchemaError{AgentType: name, Reason: "missing continuous position (implement ContinuousAgent)"}
		}
		if p := ca.Pos(); len(p) != 0 && len(p) != sp.Dims() {
			return &SchemaError{AgentType: name, Reason: "position dimensionality does not match space"}
		}
		if ka, ok := proto.(Kinetic); ok && warn {
			if v := ka.Vel(); len(v) != 0 && len(v) != sp.Dims() {
				logger.Warn("velocity dimensionality does not match space", "agent_type", name)
			}
		}
	}

	return nil
}
