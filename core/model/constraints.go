package model

import "fmt"

// Constraints holds the process-wide planning limits, fixed for a run and
// shared read-only by every week.
type Constraints struct {
	// Capacity is the maximum total units the plant can produce per week.
	Capacity int `json:"capacity" yaml:"capacity"`
	// TruckSize is the shipment batch size; shipments are integer multiples
	// of it unless the safety-stock floor overrides the rounding.
	TruckSize int `json:"truck_size" yaml:"truck_size"`
	// SafetyStock is the minimum units per SKU/DC to ship whenever that
	// component has demand.
	SafetyStock int `json:"safety_stock" yaml:"safety_stock"`
}

// Validate checks the constraint preconditions.
func (c Constraints) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigurationError{
			Field:  "capacity",
			Reason: fmt.Sprintf("must be positive, got %d", c.Capacity),
		}
	}
	if c.TruckSize <= 0 {
		return &ConfigurationError{
			Field:  "truck_size",
			Reason: fmt.Sprintf("must be positive, got %d", c.TruckSize),
		}
	}
	if c.SafetyStock < 0 {
		return &ConfigurationError{
			Field:  "safety_stock",
			Reason: fmt.Sprintf("must be non-negative, got %d", c.SafetyStock),
		}
	}
	return nil
}
