package analysis

import (
	"math"
	"strings"

	"github.com/colaworks/colaplan/core/model"
)

// noTradeoffAnnotation labels weeks without a trade-off on chart annotations.
const noTradeoffAnnotation = "No trade-off"

// annotationLen is the number of narrative characters kept for chart labels.
const annotationLen = 40

// Summarize condenses one week's allocation and shipment outcome into an
// immutable WeekSummary consumed by reporting.
func Summarize(week int, demand model.DemandVector, alloc model.Allocation, ship model.ShipmentPlan,
	violations []string, tradeoff string, constraints model.Constraints) model.WeekSummary {

	totalDemand := demand.Total()

	fulfilled := 0
	for i := range ship {
		if ship[i] < demand[i] {
			fulfilled += ship[i]
		} else {
			fulfilled += demand[i]
		}
	}

	pct := 100.0
	if totalDemand > 0 {
		pct = round1(100 * float64(fulfilled) / float64(totalDemand))
	}

	shortfall := totalDemand - constraints.Capacity
	if shortfall < 0 {
		shortfall = 0
	}

	safetyFlag := 0
	if len(violations) > 0 {
		safetyFlag = 1
	}

	tradeoffFlag := 0
	if strings.Contains(tradeoff, model.TradeoffMarker) {
		tradeoffFlag = 1
	}

	severity := round3(float64(shortfall)/float64(constraints.Capacity)) + 0.5*float64(safetyFlag)

	return model.WeekSummary{
		Week:              week,
		TotalDemand:       totalDemand,
		TotalProduced:     alloc.Total(),
		TotalShipped:      ship.Total(),
		Unfulfilled:       totalDemand - fulfilled,
		FulfillmentPct:    pct,
		Tradeoff:          tradeoff,
		Violations:        strings.Join(violations, "; "),
		NorthDemand:       demand.NorthTotal(),
		SouthDemand:       demand.SouthTotal(),
		CapacityShortfall: shortfall,
		SafetyFlag:        safetyFlag,
		TradeoffFlag:      tradeoffFlag,
		SeverityIndex:     severity,
		Annotation:        annotate(tradeoff, tradeoffFlag),
	}
}

// annotate derives the short chart label: the marker-stripped narrative
// truncated to annotationLen runes, or the no-trade-off sentinel.
func annotate(tradeoff string, flag int) string {
	if flag == 0 {
		return noTradeoffAnnotation
	}
	text := strings.ReplaceAll(tradeoff, model.TradeoffMarker+" ", "")
	runes := []rune(text)
	if len(runes) > annotationLen {
		runes = runes[:annotationLen]
	}
	return string(runes) + "..."
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
