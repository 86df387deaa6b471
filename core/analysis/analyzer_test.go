package analysis

import (
	"strings"
	"testing"

	"github.com/colaworks/colaplan/core/model"
)

var testConstraints = model.Constraints{Capacity: 150_000, TruckSize: 10_000, SafetyStock: 5_000}

func TestSummarize_ViolationWeek(t *testing.T) {
	demand := model.DemandVector{42000, 28000, 35000, 25000}
	alloc := model.Allocation{42000, 28000, 35000, 25000}
	ship := model.ShipmentPlan{40000, 4000, 30000, 20000}
	violations := []string{"North Diet shipment at 4000 below safety stock 5000"}

	sum := Summarize(2, demand, alloc, ship, violations, model.NoTradeoff, testConstraints)

	if sum.TotalDemand != 130000 || sum.TotalProduced != 130000 || sum.TotalShipped != 94000 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.Unfulfilled != 36000 {
		t.Errorf("unfulfilled = %d, want 36000", sum.Unfulfilled)
	}
	if sum.FulfillmentPct != 72.3 {
		t.Errorf("fulfillment = %v, want 72.3", sum.FulfillmentPct)
	}
	if sum.CapacityShortfall != 0 {
		t.Errorf("shortfall = %d, want 0", sum.CapacityShortfall)
	}
	if sum.SafetyFlag != 1 {
		t.Errorf("safety flag = %d, want 1", sum.SafetyFlag)
	}
	if sum.SeverityIndex != 0.5 {
		t.Errorf("severity = %v, want 0.5", sum.SeverityIndex)
	}
	if sum.TradeoffFlag != 0 {
		t.Errorf("tradeoff flag = %d, want 0", sum.TradeoffFlag)
	}
	if sum.Annotation != "No trade-off" {
		t.Errorf("annotation = %q", sum.Annotation)
	}
	if !strings.Contains(sum.Violations, "North Diet") {
		t.Errorf("violations = %q", sum.Violations)
	}
	if sum.NorthDemand != 70000 || sum.SouthDemand != 60000 {
		t.Errorf("DC demand totals = %d/%d", sum.NorthDemand, sum.SouthDemand)
	}
}

func TestSummarize_PeakWeek(t *testing.T) {
	demand := model.DemandVector{55000, 45000, 48000, 42000}
	alloc := model.Allocation{45493, 37203, 35901, 31401}
	ship := model.ShipmentPlan{40000, 30000, 30000, 30000}
	tradeoff := model.TradeoffMarker + " Peak demand week: North DC prioritized (shorter lead time). North: 100000, South: 90000"

	sum := Summarize(3, demand, alloc, ship, nil, tradeoff, testConstraints)

	if sum.FulfillmentPct != 68.4 {
		t.Errorf("fulfillment = %v, want 68.4", sum.FulfillmentPct)
	}
	if sum.CapacityShortfall != 40000 {
		t.Errorf("shortfall = %d, want 40000", sum.CapacityShortfall)
	}
	if sum.SeverityIndex != 0.267 {
		t.Errorf("severity = %v, want 0.267", sum.SeverityIndex)
	}
	if sum.TradeoffFlag != 1 {
		t.Errorf("tradeoff flag = %d, want 1", sum.TradeoffFlag)
	}
	if !strings.HasSuffix(sum.Annotation, "...") {
		t.Errorf("annotation %q not truncated", sum.Annotation)
	}
	if strings.Contains(sum.Annotation, model.TradeoffMarker) {
		t.Errorf("annotation %q retains marker", sum.Annotation)
	}
	if got := len([]rune(sum.Annotation)); got != annotationLen+3 {
		t.Errorf("annotation length = %d, want %d", got, annotationLen+3)
	}
}

func TestSummarize_ZeroDemand(t *testing.T) {
	sum := Summarize(1, model.DemandVector{}, model.Allocation{}, model.ShipmentPlan{}, nil, model.NoTradeoff, testConstraints)
	if sum.FulfillmentPct != 100 {
		t.Errorf("fulfillment = %v, want 100 for zero demand", sum.FulfillmentPct)
	}
	if sum.Unfulfilled != 0 {
		t.Errorf("unfulfilled = %d, want 0", sum.Unfulfilled)
	}
}

func TestSummarize_FulfillmentBounds(t *testing.T) {
	cases := []struct {
		name   string
		demand model.DemandVector
		ship   model.ShipmentPlan
	}{
		{"nothing shipped", model.DemandVector{100, 100, 100, 100}, model.ShipmentPlan{}},
		{"overshipped", model.DemandVector{100, 100, 100, 100}, model.ShipmentPlan{5000, 5000, 5000, 5000}},
		{"exact", model.DemandVector{100, 100, 100, 100}, model.ShipmentPlan{100, 100, 100, 100}},
	}
	for _, tc := range cases {
		sum := Summarize(1, tc.demand, model.Allocation(tc.demand), tc.ship, nil, model.NoTradeoff, testConstraints)
		if sum.FulfillmentPct < 0 || sum.FulfillmentPct > 100 {
			t.Errorf("%s: fulfillment %v out of [0,100]", tc.name, sum.FulfillmentPct)
		}
		if sum.Unfulfilled < 0 {
			t.Errorf("%s: negative unfulfilled %d", tc.name, sum.Unfulfilled)
		}
	}
}

func TestSummarize_ShortAnnotationKeptWhole(t *testing.T) {
	tradeoff := model.TradeoffMarker + " Severe constraint"
	sum := Summarize(1, model.DemandVector{100, 0, 0, 0}, model.Allocation{}, model.ShipmentPlan{}, nil, tradeoff, testConstraints)
	if sum.Annotation != "Severe constraint..." {
		t.Errorf("annotation = %q", sum.Annotation)
	}
}
