package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	coremetrics "github.com/colaworks/colaplan/core/metrics"
	"github.com/colaworks/colaplan/core/model"
)

func TestInfluxSink_RecordWeek(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	ev := coremetrics.WeekEvent{
		RunID: "run-1",
		Summary: model.WeekSummary{
			Week:           2,
			TotalDemand:    130000,
			TotalProduced:  130000,
			TotalShipped:   124000,
			Unfulfilled:    6000,
			FulfillmentPct: 95.4,
			SeverityIndex:  0.5,
			SafetyFlag:     1,
		},
		NorthTrucks: 7,
		SouthTrucks: 6,
	}
	if err := sink.RecordWeek(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	if !strings.HasPrefix(body, "week_summary,run_id=run-1,week=2 ") {
		t.Errorf("unexpected measurement line: %s", body)
	}
	for _, field := range []string{"fulfillment_pct=95.4", "unfulfilled=6000i", "safety_flag=1i", "north_trucks=7i"} {
		if !strings.Contains(body, field) {
			t.Errorf("missing field %s in body: %s", field, body)
		}
	}
}

func TestInfluxSink_RecordPlan(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	ev := coremetrics.PlanEvent{
		RunID:               "run-1",
		Weeks:               4,
		TotalTrucks:         42,
		AvgUtilizationPct:   96.19,
		AvgFulfillmentPct:   91.4,
		TotalUnfulfilled:    67000,
		WeeksWithViolations: 1,
	}
	if err := sink.RecordPlan(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	if !strings.HasPrefix(body, "plan_summary,run_id=run-1 ") {
		t.Errorf("unexpected measurement line: %s", body)
	}
	for _, field := range []string{"total_trucks=42i", "avg_utilization_pct=96.19", "weeks_with_violations=1i"} {
		if !strings.Contains(body, field) {
			t.Errorf("missing field %s in body: %s", field, body)
		}
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	if _, ok := rec.(coremetrics.NopRecorder); !ok {
		t.Fatalf("expected NopRecorder fallback, got %T", rec)
	}
}
