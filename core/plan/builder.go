package plan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/colaworks/colaplan/core/allocation"
	"github.com/colaworks/colaplan/core/analysis"
	"github.com/colaworks/colaplan/core/model"
	"github.com/colaworks/colaplan/core/shipment"
)

// WeekResult groups the three records produced for one week, plus the
// per-DC truck counts derived from the shipment plan.
type WeekResult struct {
	Week        int                `json:"week"`
	Demand      model.DemandVector `json:"demand"`
	Allocation  model.Allocation   `json:"allocation"`
	Shipment    model.ShipmentPlan `json:"shipment"`
	Violations  []string           `json:"violations,omitempty"`
	Summary     model.WeekSummary  `json:"summary"`
	NorthTrucks int                `json:"north_trucks"`
	SouthTrucks int                `json:"south_trucks"`
}

// Plan is the full multi-week result, ordered exactly like the input
// forecast. It is immutable once built.
type Plan struct {
	runID       string
	constraints model.Constraints
	weeks       []WeekResult
}

// RunID identifies the planning run for logs and exports.
func (p *Plan) RunID() string { return p.runID }

// Constraints returns the configuration the plan was built against.
func (p *Plan) Constraints() model.Constraints { return p.constraints }

// Len returns the number of planned weeks.
func (p *Plan) Len() int { return len(p.weeks) }

// Weeks returns the per-week results in input order.
func (p *Plan) Weeks() []WeekResult {
	out := make([]WeekResult, len(p.weeks))
	copy(out, p.weeks)
	return out
}

// Builder runs the per-week pipeline (allocate, ship, summarize) over a
// demand series. Weeks share no state; input order is preserved.
type Builder struct {
	constraints model.Constraints
	allocator   allocation.Allocator
	rounder     shipment.Rounder
}

// NewBuilder wires the engines for the given constraints, policy and
// violation injections.
func NewBuilder(c model.Constraints, p allocation.Policy, inj []shipment.Injection) Builder {
	return Builder{
		constraints: c,
		allocator:   allocation.New(c, p),
		rounder:     shipment.New(c, inj),
	}
}

// Build validates the inputs and computes the plan. Malformed constraints or
// demand fail fast with a ConfigurationError.
func (b Builder) Build(series []model.WeekDemand) (*Plan, error) {
	if err := b.constraints.Validate(); err != nil {
		return nil, err
	}
	for _, wd := range series {
		if err := wd.Validate(); err != nil {
			return nil, fmt.Errorf("week %d: %w", wd.Week, err)
		}
	}

	results := make([]WeekResult, 0, len(series))
	for _, wd := range series {
		alloc, tradeoff, _ := b.allocator.Allocate(wd.Demand, wd.Week)
		ship, violations := b.rounder.Ship(alloc, wd.Demand, wd.Week)
		summary := analysis.Summarize(wd.Week, wd.Demand, alloc, ship, violations, tradeoff, b.constraints)

		results = append(results, WeekResult{
			Week:        wd.Week,
			Demand:      wd.Demand,
			Allocation:  alloc,
			Shipment:    ship,
			Violations:  violations,
			Summary:     summary,
			NorthTrucks: trucksFor(ship[model.NorthRegular]+ship[model.NorthDiet], b.constraints.TruckSize),
			SouthTrucks: trucksFor(ship[model.SouthRegular]+ship[model.SouthDiet], b.constraints.TruckSize),
		})
	}

	return &Plan{
		runID:       uuid.NewString(),
		constraints: b.constraints,
		weeks:       results,
	}, nil
}

// trucksFor returns the number of trucks needed for a DC's shipped units.
// A partially filled truck still has to be dispatched, hence the ceiling.
func trucksFor(units, truckSize int) int {
	return (units + truckSize - 1) / truckSize
}
