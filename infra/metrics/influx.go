package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/colaworks/colaplan/core/metrics"
	"github.com/colaworks/colaplan/infra/logger"
)

// InfluxSink writes planning results to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopRecorder if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.PlanRecorder {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopRecorder{}
	}
	return sink
}

// RecordWeek writes one week summary as a measurement point.
func (s *InfluxSink) RecordWeek(ev coremetrics.WeekEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sum := ev.Summary
	p := write.NewPointWithMeasurement("week_summary").
		AddTag("run_id", ev.RunID).
		AddTag("week", strconv.Itoa(sum.Week)).
		AddField("total_demand", sum.TotalDemand).
		AddField("total_produced", sum.TotalProduced).
		AddField("total_shipped", sum.TotalShipped).
		AddField("unfulfilled", sum.Unfulfilled).
		AddField("fulfillment_pct", round3(sum.FulfillmentPct)).
		AddField("severity_index", round3(sum.SeverityIndex)).
		AddField("safety_flag", sum.SafetyFlag).
		AddField("north_trucks", ev.NorthTrucks).
		AddField("south_trucks", ev.SouthTrucks).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordPlan writes the aggregate result of a planning run.
func (s *InfluxSink) RecordPlan(ev coremetrics.PlanEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_summary").
		AddTag("run_id", ev.RunID).
		AddField("weeks", ev.Weeks).
		AddField("total_trucks", ev.TotalTrucks).
		AddField("avg_utilization_pct", round3(ev.AvgUtilizationPct)).
		AddField("avg_fulfillment_pct", round3(ev.AvgFulfillmentPct)).
		AddField("total_unfulfilled", ev.TotalUnfulfilled).
		AddField("weeks_with_violations", ev.WeeksWithViolations).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
