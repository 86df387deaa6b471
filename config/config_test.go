package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colaworks/colaplan/core/model"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `constraints:
  capacity: 120000
  truck_size: 8000
  safety_stock: 4000
policy:
  peak_week: 2
  north_priority: 1.1
  south_priority: 0.9
injections:
  - week: 4
    component: 2
    shortfall: 500
forecast:
  weeks:
    - week: 1
      demand: [10000, 10000, 10000, 10000]
metrics:
  prometheus_enabled: true
  prometheus_port: ":9100"
export:
  format: "csv"
  path: "plan.csv"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"capacity", cfg.Constraints.Capacity, 120000},
		{"truck size", cfg.Constraints.TruckSize, 8000},
		{"safety stock", cfg.Constraints.SafetyStock, 4000},
		{"peak week", cfg.Policy.PeakWeek, 2},
		{"north priority", cfg.Policy.NorthPriority, 1.1},
		{"south priority", cfg.Policy.SouthPriority, 0.9},
		{"injection week", cfg.Injections[0].Week, 4},
		{"injection component", cfg.Injections[0].Component, model.SouthRegular},
		{"injection shortfall", cfg.Injections[0].Shortfall, 500},
		{"forecast weeks", len(cfg.Forecast.Weeks), 1},
		{"prometheus enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus port", cfg.Metrics.PrometheusPort, ":9100"},
		{"export format", cfg.Export.Format, "csv"},
		{"export path", cfg.Export.Path, "plan.csv"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Constraints != (model.Constraints{Capacity: 150_000, TruckSize: 10_000, SafetyStock: 5_000}) {
		t.Errorf("constraints = %+v", cfg.Constraints)
	}
	if cfg.Policy.PeakWeek != 3 || cfg.Policy.NorthPriority != 1.05 || cfg.Policy.SouthPriority != 0.95 {
		t.Errorf("policy = %+v", cfg.Policy)
	}
	if len(cfg.Injections) != 1 || cfg.Injections[0].Component != model.NorthDiet || cfg.Injections[0].Shortfall != 1000 {
		t.Errorf("injections = %+v", cfg.Injections)
	}
	if len(cfg.Forecast.Weeks) != 4 {
		t.Errorf("forecast weeks = %d, want 4", len(cfg.Forecast.Weeks))
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Constraints.Capacity = 0 }},
		{"negative shortfall", func(c *Config) { c.Injections[0].Shortfall = -1 }},
		{"component out of range", func(c *Config) { c.Injections[0].Component = 9 }},
		{"injection week zero", func(c *Config) { c.Injections[0].Week = 0 }},
		{"influx missing url", func(c *Config) { c.Metrics.InfluxEnabled = true }},
		{"bad export format", func(c *Config) { c.Export.Format = "xml" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestSeries_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forecast.yaml")
	data := `weeks:
  - week: 1
    demand: [1000, 0, 0, 0]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write forecast: %v", err)
	}
	cfg := Default()
	cfg.Forecast.Path = path

	weeks, err := cfg.Series()
	if err != nil {
		t.Fatalf("series error: %v", err)
	}
	if len(weeks) != 1 || weeks[0].Demand[model.NorthRegular] != 1000 {
		t.Errorf("weeks = %+v", weeks)
	}
}
