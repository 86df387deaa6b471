package plan

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Advisory thresholds from the reference scenario.
const (
	lowFulfillmentPct    = 95.0
	highUnfulfilledUnits = 50_000
)

// Report aggregates the plan for the reporting layer: fleet sizing, service
// level and the advisory notices shown alongside the trade-off table.
type Report struct {
	TotalTrucks         int      `json:"total_trucks"`
	AvgUtilizationPct   float64  `json:"avg_utilization_pct"`
	AvgFulfillmentPct   float64  `json:"avg_fulfillment_pct"`
	AvgSeverityIndex    float64  `json:"avg_severity_index"`
	TotalShipped        int      `json:"total_shipped"`
	TotalUnfulfilled    int      `json:"total_unfulfilled"`
	WeeksWithTradeoffs  int      `json:"weeks_with_tradeoffs"`
	WeeksWithViolations int      `json:"weeks_with_violations"`
	Notices             []string `json:"notices,omitempty"`
}

// Report computes the aggregate view of the plan.
func (p *Plan) Report() Report {
	var r Report
	fulfillment := make([]float64, 0, len(p.weeks))
	severity := make([]float64, 0, len(p.weeks))

	for _, w := range p.weeks {
		r.TotalTrucks += w.NorthTrucks + w.SouthTrucks
		r.TotalShipped += w.Shipment.Total()
		r.TotalUnfulfilled += w.Summary.Unfulfilled
		r.WeeksWithTradeoffs += w.Summary.TradeoffFlag
		r.WeeksWithViolations += w.Summary.SafetyFlag
		fulfillment = append(fulfillment, w.Summary.FulfillmentPct)
		severity = append(severity, w.Summary.SeverityIndex)
	}

	if len(fulfillment) > 0 {
		r.AvgFulfillmentPct = stat.Mean(fulfillment, nil)
		r.AvgSeverityIndex = stat.Mean(severity, nil)
	}
	if r.TotalTrucks > 0 {
		r.AvgUtilizationPct = float64(r.TotalShipped) / float64(r.TotalTrucks*p.constraints.TruckSize) * 100
	}

	r.Notices = p.notices(r)
	return r
}

// notices returns the advisory messages triggered by the aggregate results.
func (p *Plan) notices(r Report) []string {
	var notes []string
	if len(p.weeks) > 0 && r.AvgFulfillmentPct < lowFulfillmentPct {
		notes = append(notes, fmt.Sprintf("average fulfillment %.1f%% below %.0f%%: consider capacity expansion",
			r.AvgFulfillmentPct, lowFulfillmentPct))
	}
	if r.WeeksWithViolations > 0 {
		notes = append(notes, "safety stock violations detected: review safety stock settings or logistics")
	}
	if r.TotalUnfulfilled > highUnfulfilledUnits {
		notes = append(notes, fmt.Sprintf("total unfulfilled demand %d above %d: consider demand management or capacity increase",
			r.TotalUnfulfilled, highUnfulfilledUnits))
	}
	return notes
}
