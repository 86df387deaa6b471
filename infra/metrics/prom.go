package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/colaworks/colaplan/core/metrics"
)

// PromSink records planning results in Prometheus metrics.
type PromSink struct {
	fulfillment *prometheus.GaugeVec
	severity    *prometheus.GaugeVec
	trucks      *prometheus.GaugeVec
	violations  *prometheus.CounterVec
	avgFulfill  prometheus.Gauge
	unfulfilled prometheus.Gauge
}

// NewPromSink registers planning metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		fulfillment: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "plan_week_fulfillment_pct",
			Help: "Demand fulfillment percentage per planned week",
		}, []string{"week"}),
		severity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "plan_week_severity_index",
			Help: "Trade-off severity index per planned week",
		}, []string{"week"}),
		trucks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "plan_week_trucks",
			Help: "Trucks dispatched per week and distribution center",
		}, []string{"week", "dc"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plan_safety_violations_total",
			Help: "Total number of weeks with safety stock violations",
		}, []string{"week"}),
		avgFulfill: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plan_avg_fulfillment_pct",
			Help: "Average fulfillment percentage of the last planning run",
		}),
		unfulfilled: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plan_unfulfilled_units",
			Help: "Total unfulfilled units of the last planning run",
		}),
	}

	var err error
	if s.fulfillment, err = registerGaugeVec(reg, s.fulfillment); err != nil {
		return nil, err
	}
	if s.severity, err = registerGaugeVec(reg, s.severity); err != nil {
		return nil, err
	}
	if s.trucks, err = registerGaugeVec(reg, s.trucks); err != nil {
		return nil, err
	}
	if s.violations, err = registerCounterVec(reg, s.violations); err != nil {
		return nil, err
	}
	if s.avgFulfill, err = registerGauge(reg, s.avgFulfill); err != nil {
		return nil, err
	}
	if s.unfulfilled, err = registerGauge(reg, s.unfulfilled); err != nil {
		return nil, err
	}
	return s, nil
}

func registerGaugeVec(reg prometheus.Registerer, c *prometheus.GaugeVec) (*prometheus.GaugeVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec), nil
		}
		return nil, err
	}
	return c, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, c prometheus.Gauge) (prometheus.Gauge, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge), nil
		}
		return nil, err
	}
	return c, nil
}

// RecordWeek sets the per-week gauges and counts safety violations.
func (s *PromSink) RecordWeek(ev coremetrics.WeekEvent) error {
	week := strconv.Itoa(ev.Summary.Week)
	s.fulfillment.WithLabelValues(week).Set(ev.Summary.FulfillmentPct)
	s.severity.WithLabelValues(week).Set(ev.Summary.SeverityIndex)
	s.trucks.WithLabelValues(week, "north").Set(float64(ev.NorthTrucks))
	s.trucks.WithLabelValues(week, "south").Set(float64(ev.SouthTrucks))
	if ev.Summary.SafetyFlag == 1 {
		s.violations.WithLabelValues(week).Inc()
	}
	return nil
}

// RecordPlan sets the aggregate gauges for the run.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.avgFulfill.Set(ev.AvgFulfillmentPct)
	s.unfulfilled.Set(float64(ev.TotalUnfulfilled))
	return nil
}
