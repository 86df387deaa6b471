package shipment

import (
	"fmt"

	"github.com/colaworks/colaplan/core/model"
)

// Injection forces a safety-stock bypass for one component on one week,
// modelling a truck-rounding induced stockout for demonstration runs. The
// shipment drops to SafetyStock minus Shortfall instead of being floored.
type Injection struct {
	Week      int             `json:"week" yaml:"week"`
	Component model.Component `json:"component" yaml:"component"`
	// Shortfall is how far below the safety stock the forced shipment lands.
	Shortfall int `json:"shortfall" yaml:"shortfall"`
}

// Rounder quantizes an allocation into truck-sized shipments and detects
// safety-stock violations. Outside the configured injections, a component
// with demand always ships at least the safety stock.
type Rounder struct {
	Constraints model.Constraints
	Injections  []Injection
}

// New returns a Rounder for the given constraints and injections.
func New(c model.Constraints, inj []Injection) Rounder {
	return Rounder{Constraints: c, Injections: inj}
}

// Ship rounds the week's allocation to truck multiples, enforces the
// safety-stock floor and returns the shipment plan with the violation notes,
// if any.
func (r Rounder) Ship(alloc model.Allocation, demand model.DemandVector, week int) (model.ShipmentPlan, []string) {
	var plan model.ShipmentPlan
	var violations []string

	for i := range alloc {
		if demand[i] == 0 {
			// No truck dispatched, no violation possible.
			plan[i] = 0
			continue
		}

		qty := (alloc[i] / r.Constraints.TruckSize) * r.Constraints.TruckSize
		if qty < r.Constraints.SafetyStock {
			qty = r.Constraints.SafetyStock
		}

		if inj, ok := r.injectionFor(week, model.Component(i)); ok && qty > r.Constraints.SafetyStock {
			qty = r.Constraints.SafetyStock - inj.Shortfall
			if qty < 0 {
				qty = 0
			}
		}

		if qty < r.Constraints.SafetyStock {
			violations = append(violations, fmt.Sprintf("%s shipment at %d below safety stock %d",
				model.Component(i), qty, r.Constraints.SafetyStock))
		}
		plan[i] = qty
	}
	return plan, violations
}

func (r Rounder) injectionFor(week int, c model.Component) (Injection, bool) {
	for _, inj := range r.Injections {
		if inj.Week == week && inj.Component == c {
			return inj, true
		}
	}
	return Injection{}, false
}
