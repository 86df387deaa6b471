package model

import "fmt"

// Component identifies one SKU/DC slot in a demand or shipment vector.
type Component int

const (
	NorthRegular Component = iota
	NorthDiet
	SouthRegular
	SouthDiet

	// NumComponents is the fixed width of every weekly vector.
	NumComponents = 4
)

// String returns a human-readable name for the component.
func (c Component) String() string {
	switch c {
	case NorthRegular:
		return "North Regular"
	case NorthDiet:
		return "North Diet"
	case SouthRegular:
		return "South Regular"
	case SouthDiet:
		return "South Diet"
	default:
		return "unknown"
	}
}

// DemandVector holds one week of forecast demand in units, ordered
// (North Regular, North Diet, South Regular, South Diet).
type DemandVector [NumComponents]int

// Total returns the summed demand across all SKUs and DCs.
func (d DemandVector) Total() int {
	return d[NorthRegular] + d[NorthDiet] + d[SouthRegular] + d[SouthDiet]
}

// NorthTotal returns the combined demand bound for the North DC.
func (d DemandVector) NorthTotal() int {
	return d[NorthRegular] + d[NorthDiet]
}

// SouthTotal returns the combined demand bound for the South DC.
func (d DemandVector) SouthTotal() int {
	return d[SouthRegular] + d[SouthDiet]
}

// Validate checks that no component is negative.
func (d DemandVector) Validate() error {
	for i, v := range d {
		if v < 0 {
			return &ConfigurationError{
				Field:  fmt.Sprintf("demand[%s]", Component(i)),
				Reason: fmt.Sprintf("must be non-negative, got %d", v),
			}
		}
	}
	return nil
}

// WeekDemand pairs a 1-based week index with its demand vector.
type WeekDemand struct {
	Week   int          `json:"week" yaml:"week"`
	Demand DemandVector `json:"demand" yaml:"demand"`
}

// Validate checks the week index and the demand vector.
func (w WeekDemand) Validate() error {
	if w.Week <= 0 {
		return &ConfigurationError{
			Field:  "week",
			Reason: fmt.Sprintf("must be positive, got %d", w.Week),
		}
	}
	return w.Demand.Validate()
}
