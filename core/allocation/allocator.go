package allocation

import (
	"fmt"

	"github.com/colaworks/colaplan/core/model"
)

// Allocator turns a weekly demand vector into a capacity-constrained
// production allocation together with a trade-off narrative. It holds no
// per-week state; weeks are independent.
type Allocator struct {
	Constraints model.Constraints
	Policy      Policy
}

// New returns an Allocator for the given constraints and policy.
func New(c model.Constraints, p Policy) Allocator {
	return Allocator{Constraints: c, Policy: p}
}

// Allocate decides the production quantities for one week. It returns the
// allocation, the trade-off narrative ("-" when full demand is met) and the
// capacity shortfall note.
func (a Allocator) Allocate(demand model.DemandVector, week int) (model.Allocation, string, string) {
	total := demand.Total()
	if total <= a.Constraints.Capacity {
		return model.Allocation(demand), model.NoTradeoff, model.FullDemandMet
	}

	scale := float64(a.Constraints.Capacity) / float64(total)

	var alloc model.Allocation
	var tradeoff string
	switch a.Policy.VariantFor(week) {
	case VariantPeakPrioritized:
		alloc = a.allocatePeak(demand, scale)
		tradeoff = fmt.Sprintf("%s Peak demand week: North DC prioritized (shorter lead time). North: %d, South: %d",
			model.TradeoffMarker, demand.NorthTotal(), demand.SouthTotal())
	default:
		alloc, tradeoff = a.allocateStandard(demand, scale, total)
	}

	for i, v := range alloc {
		if v < 0 {
			alloc[i] = 0
		}
	}

	note := fmt.Sprintf("Capacity shortfall: %d", total-a.Constraints.Capacity)
	return alloc, tradeoff, note
}

// allocatePeak applies the asymmetric DC priorities, capping each component
// at its own demand. If the boosted sum still exceeds capacity the overshoot
// is subtracted uniformly, floored at the safety stock.
func (a Allocator) allocatePeak(demand model.DemandVector, scale float64) model.Allocation {
	north := scale * a.Policy.NorthPriority
	south := scale * a.Policy.SouthPriority

	var alloc model.Allocation
	for i, d := range demand {
		factor := north
		if model.Component(i) == model.SouthRegular || model.Component(i) == model.SouthDiet {
			factor = south
		}
		scaled := int(float64(d) * factor)
		if scaled > d {
			scaled = d
		}
		alloc[i] = scaled
	}

	if over := alloc.Total() - a.Constraints.Capacity; over > 0 {
		adjustment := float64(over) / float64(model.NumComponents)
		for i, v := range alloc {
			adjusted := int(float64(v) - adjustment)
			if adjusted < a.Constraints.SafetyStock {
				adjusted = a.Constraints.SafetyStock
			}
			alloc[i] = adjusted
		}
	}
	return alloc
}

// allocateStandard scales demand proportionally with a safety-stock floor.
// When the floor pushes the total back over capacity it falls back to a
// uniform 10%-discounted scale without the floor; capacity takes precedence
// and the resulting safety breach surfaces downstream as a violation.
func (a Allocator) allocateStandard(demand model.DemandVector, scale float64, total int) (model.Allocation, string) {
	var alloc model.Allocation
	for i, d := range demand {
		scaled := int(float64(d) * scale)
		if scaled < a.Constraints.SafetyStock {
			scaled = a.Constraints.SafetyStock
		}
		alloc[i] = scaled
	}

	if alloc.Total() > a.Constraints.Capacity {
		for i, d := range demand {
			alloc[i] = int(float64(d) * scale * 0.9)
		}
		return alloc, fmt.Sprintf("%s Severe constraint: Uniform reduction. Demand %d, Capacity %d",
			model.TradeoffMarker, total, a.Constraints.Capacity)
	}
	return alloc, fmt.Sprintf("%s Capacity constrained: Proportional scale-down. North: %d, South: %d",
		model.TradeoffMarker, demand.NorthTotal(), demand.SouthTotal())
}
