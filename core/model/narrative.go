package model

// TradeoffMarker prefixes every narrative describing a constraint-forced
// trade-off. The analyzer keys its trade-off flag on its presence and strips
// it for chart annotations.
const TradeoffMarker = "⚠️"

// NoTradeoff is the narrative sentinel for weeks where full demand is met.
const NoTradeoff = "-"

// FullDemandMet is the shortfall note for weeks within plant capacity.
const FullDemandMet = "Full demand met"
