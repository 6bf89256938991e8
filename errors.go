package secular

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every *ParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateGeometry is returned when the planet and the test particle
	// share the same semi-major axis, where the secular timescale is undefined.
	ErrDegenerateGeometry = errors.New("planet and test particle share the same orbit")
	// ErrInvalidScenario is returned when a scenario file does not match the schema.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// ParameterError reports a non-physical input.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Name, e.Value, e.Reason)
}

// Is allows errors.Is(err, ErrInvalidParameter).
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
