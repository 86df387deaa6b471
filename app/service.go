package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colaworks/colaplan/config"
	coremetrics "github.com/colaworks/colaplan/core/metrics"
	"github.com/colaworks/colaplan/core/plan"
	"github.com/colaworks/colaplan/infra/logger"
	"github.com/colaworks/colaplan/infra/metrics"
	"github.com/colaworks/colaplan/pkg/export"
)

// Service wires the configuration, the planning engines, the metrics sinks
// and the export writers into one run.
type Service struct {
	cfg      *config.Config
	builder  plan.Builder
	recorder coremetrics.PlanRecorder
	influx   *metrics.InfluxSink
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var recorders []coremetrics.PlanRecorder
	var influx *metrics.InfluxSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		recorders = append(recorders, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		rec := metrics.NewInfluxSinkWithFallback(cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		if sink, ok := rec.(*metrics.InfluxSink); ok {
			influx = sink
		}
		recorders = append(recorders, rec)
	}

	var recorder coremetrics.PlanRecorder
	switch len(recorders) {
	case 0:
		recorder = coremetrics.NopRecorder{}
	case 1:
		recorder = recorders[0]
	default:
		recorder = metrics.NewMultiRecorder(recorders...)
	}

	return &Service{
		cfg:      cfg,
		builder:  plan.NewBuilder(cfg.Constraints, cfg.Policy, cfg.Injections),
		recorder: recorder,
		influx:   influx,
		log:      logg,
	}, nil
}

// Plan computes the plan for the configured forecast and records it on the
// metrics sinks.
func (s *Service) Plan() (*plan.Plan, error) {
	series, err := s.cfg.Series()
	if err != nil {
		return nil, err
	}
	p, err := s.builder.Build(series)
	if err != nil {
		return nil, err
	}

	for _, w := range p.Weeks() {
		if err := s.recorder.RecordWeek(coremetrics.WeekEvent{
			RunID:       p.RunID(),
			Summary:     w.Summary,
			Shipment:    w.Shipment,
			NorthTrucks: w.NorthTrucks,
			SouthTrucks: w.SouthTrucks,
		}); err != nil {
			s.log.Errorf("record week %d: %v", w.Week, err)
		}
	}
	r := p.Report()
	if err := s.recorder.RecordPlan(coremetrics.PlanEvent{
		RunID:               p.RunID(),
		Weeks:               p.Len(),
		TotalTrucks:         r.TotalTrucks,
		AvgUtilizationPct:   r.AvgUtilizationPct,
		AvgFulfillmentPct:   r.AvgFulfillmentPct,
		TotalUnfulfilled:    r.TotalUnfulfilled,
		WeeksWithViolations: r.WeeksWithViolations,
	}); err != nil {
		s.log.Errorf("record plan: %v", err)
	}
	return p, nil
}

// Run computes the plan, logs the trade-off remarks, writes the configured
// export and, when Prometheus is enabled, serves metrics until the context
// is cancelled.
func (s *Service) Run(ctx context.Context) error {
	p, err := s.Plan()
	if err != nil {
		return err
	}

	s.logRemarks(p)
	if err := s.export(p); err != nil {
		return fmt.Errorf("export plan: %w", err)
	}

	if s.cfg.Metrics.PrometheusEnabled {
		s.log.Infof("serving metrics on %s", s.cfg.Metrics.PrometheusPort)
		return metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort)
	}
	return nil
}

// logRemarks mirrors the per-week trade-off remarks of the analysis report:
// one structured entry per constrained week, plus the aggregate notices.
func (s *Service) logRemarks(p *plan.Plan) {
	for _, w := range p.Weeks() {
		sum := w.Summary
		if sum.Unfulfilled == 0 && sum.TradeoffFlag == 0 {
			continue
		}
		s.log.Debugw("week trade-off", map[string]any{
			"week":         sum.Week,
			"total_demand": sum.TotalDemand,
			"north_demand": sum.NorthDemand,
			"south_demand": sum.SouthDemand,
			"tradeoff":     sum.Tradeoff,
			"violations":   sum.Violations,
		})
		s.log.Infof("week %d: demand %d, produced %d, fulfillment %.1f%%",
			sum.Week, sum.TotalDemand, sum.TotalProduced, sum.FulfillmentPct)
		if sum.Violations != "" {
			s.log.Warnf("week %d safety violations: %s", sum.Week, sum.Violations)
		}
	}
	r := p.Report()
	s.log.Infof("plan %s: %d weeks, %d trucks, avg utilization %.1f%%, avg fulfillment %.1f%%",
		p.RunID(), p.Len(), r.TotalTrucks, r.AvgUtilizationPct, r.AvgFulfillmentPct)
	for _, n := range r.Notices {
		s.log.Warnf("%s", n)
	}
}

// export writes the plan in the configured format to the configured path,
// defaulting to stdout.
func (s *Service) export(p *plan.Plan) error {
	if s.cfg.Export.Format == "" {
		return nil
	}
	var w io.Writer = os.Stdout
	if s.cfg.Export.Path != "" {
		f, err := os.Create(s.cfg.Export.Path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				s.log.Errorf("close export file: %v", cerr)
			}
		}()
		w = f
	}
	switch s.cfg.Export.Format {
	case "csv":
		return export.WriteCSV(w, p)
	default:
		return export.WriteJSON(w, p)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}
