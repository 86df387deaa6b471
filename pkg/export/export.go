package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/colaworks/colaplan/core/plan"
)

// document is the JSON shape of an exported plan.
type document struct {
	RunID  string            `json:"run_id"`
	Weeks  []plan.WeekResult `json:"weeks"`
	Report plan.Report       `json:"report"`
}

// WriteJSON writes the full plan, including the aggregate report, to w.
func WriteJSON(w io.Writer, p *plan.Plan) error {
	enc := json.NewEncoder(w)
	return enc.Encode(document{RunID: p.RunID(), Weeks: p.Weeks(), Report: p.Report()})
}

var csvHeader = []string{
	"week",
	"north_regular", "north_diet", "south_regular", "south_diet",
	"north_regular_ship", "north_diet_ship", "south_regular_ship", "south_diet_ship",
	"north_trucks", "south_trucks",
	"total_demand", "total_produced", "total_shipped", "unfulfilled",
	"fulfillment_pct", "severity_index",
	"tradeoff", "safety_violations",
}

// WriteCSV writes one row per planned week with production, shipment and
// summary columns.
func WriteCSV(w io.Writer, p *plan.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, wk := range p.Weeks() {
		rec := []string{
			strconv.Itoa(wk.Week),
			strconv.Itoa(wk.Allocation[0]),
			strconv.Itoa(wk.Allocation[1]),
			strconv.Itoa(wk.Allocation[2]),
			strconv.Itoa(wk.Allocation[3]),
			strconv.Itoa(wk.Shipment[0]),
			strconv.Itoa(wk.Shipment[1]),
			strconv.Itoa(wk.Shipment[2]),
			strconv.Itoa(wk.Shipment[3]),
			strconv.Itoa(wk.NorthTrucks),
			strconv.Itoa(wk.SouthTrucks),
			strconv.Itoa(wk.Summary.TotalDemand),
			strconv.Itoa(wk.Summary.TotalProduced),
			strconv.Itoa(wk.Summary.TotalShipped),
			strconv.Itoa(wk.Summary.Unfulfilled),
			strconv.FormatFloat(wk.Summary.FulfillmentPct, 'f', 1, 64),
			strconv.FormatFloat(wk.Summary.SeverityIndex, 'f', 3, 64),
			wk.Summary.Tradeoff,
			wk.Summary.Violations,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
