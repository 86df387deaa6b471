package model

// Allocation is a capacity-constrained production decision for one week,
// ordered like DemandVector. Components never exceed their demand.
type Allocation [NumComponents]int

// Total returns the summed allocated units.
func (a Allocation) Total() int {
	return a[NorthRegular] + a[NorthDiet] + a[SouthRegular] + a[SouthDiet]
}

// ShipmentPlan is a truck-quantized shipment decision for one week, ordered
// like DemandVector. Components are multiples of the truck size except where
// the safety-stock floor, or a forced bypass of it, overrides the rounding.
type ShipmentPlan [NumComponents]int

// Total returns the summed shipped units.
func (s ShipmentPlan) Total() int {
	return s[NorthRegular] + s[NorthDiet] + s[SouthRegular] + s[SouthDiet]
}

// WeekSummary aggregates the allocation and shipment outcome of a single
// week. It is built once by the analyzer and immutable afterwards; the
// reporting layer only reads it.
type WeekSummary struct {
	Week              int     `json:"week"`
	TotalDemand       int     `json:"total_demand"`
	TotalProduced     int     `json:"total_produced"`
	TotalShipped      int     `json:"total_shipped"`
	Unfulfilled       int     `json:"unfulfilled"`
	FulfillmentPct    float64 `json:"fulfillment_pct"`
	Tradeoff          string  `json:"tradeoff"`
	Violations        string  `json:"violations,omitempty"`
	NorthDemand       int     `json:"north_demand"`
	SouthDemand       int     `json:"south_demand"`
	CapacityShortfall int     `json:"capacity_shortfall"`
	SafetyFlag        int     `json:"safety_flag"`
	TradeoffFlag      int     `json:"tradeoff_flag"`
	SeverityIndex     float64 `json:"severity_index"`
	Annotation        string  `json:"annotation"`
}
