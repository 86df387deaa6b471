package model

import "fmt"

// ConfigurationError reports a precondition violation in planner input, such
// as negative demand or a non-positive capacity. The engine fails fast with
// it instead of producing negative allocations.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}
