package metrics

import "github.com/colaworks/colaplan/core/model"

// WeekEvent is a per-week planning outcome to be recorded for observability.
type WeekEvent struct {
	RunID       string
	Summary     model.WeekSummary
	Shipment    model.ShipmentPlan
	NorthTrucks int
	SouthTrucks int
}

// PlanEvent captures the aggregate result of a planning run.
type PlanEvent struct {
	RunID               string
	Weeks               int
	TotalTrucks         int
	AvgUtilizationPct   float64
	AvgFulfillmentPct   float64
	TotalUnfulfilled    int
	WeeksWithViolations int
}

// PlanRecorder records planning results for observability purposes.
type PlanRecorder interface {
	RecordWeek(ev WeekEvent) error
	RecordPlan(ev PlanEvent) error
}

// NopRecorder implements PlanRecorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordWeek(WeekEvent) error { return nil }

func (NopRecorder) RecordPlan(PlanEvent) error { return nil }
