package allocation

// Variant selects the allocation behaviour applied to a week.
type Variant int

const (
	// VariantStandard scales every component proportionally, flooring each
	// at the safety stock.
	VariantStandard Variant = iota
	// VariantPeakPrioritized applies asymmetric DC priorities; the North DC
	// is favoured for its shorter lead time.
	VariantPeakPrioritized
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantPeakPrioritized:
		return "peak_prioritized"
	default:
		return "unknown"
	}
}

// Policy maps week indexes to allocation variants. The peak week and its
// priority multipliers are configuration, not hardcoded comparisons.
type Policy struct {
	// PeakWeek designates the week handled with DC priorities. Zero means
	// no week is treated as peak.
	PeakWeek int `json:"peak_week" yaml:"peak_week"`
	// NorthPriority multiplies the proportional scale for North components
	// on the peak week.
	NorthPriority float64 `json:"north_priority" yaml:"north_priority"`
	// SouthPriority multiplies the proportional scale for South components
	// on the peak week.
	SouthPriority float64 `json:"south_priority" yaml:"south_priority"`
}

// SetDefaults applies the 5% North boost and South reduction used by the
// reference scenario.
func (p *Policy) SetDefaults() {
	if p.NorthPriority == 0 {
		p.NorthPriority = 1.05
	}
	if p.SouthPriority == 0 {
		p.SouthPriority = 0.95
	}
}

// VariantFor returns the variant applied to the given week.
func (p Policy) VariantFor(week int) Variant {
	if p.PeakWeek != 0 && week == p.PeakWeek {
		return VariantPeakPrioritized
	}
	return VariantStandard
}
