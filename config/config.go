package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/colaworks/colaplan/core/allocation"
	"github.com/colaworks/colaplan/core/forecast"
	"github.com/colaworks/colaplan/core/model"
	"github.com/colaworks/colaplan/core/shipment"
)

// Config is the full planner configuration. Zero values are replaced with
// the demonstration scenario defaults.
type Config struct {
	Constraints model.Constraints    `json:"constraints"`
	Policy      allocation.Policy    `json:"policy"`
	Injections  []shipment.Injection `json:"injections"`
	Forecast    ForecastConfig       `json:"forecast"`
	Metrics     MetricsConfig        `json:"metrics"`
	Export      ExportConfig         `json:"export"`
}

// ForecastConfig selects the demand series: an external file or inline weeks.
type ForecastConfig struct {
	// Path points to a YAML/JSON forecast file. Takes precedence over Weeks.
	Path string `json:"path"`
	// Weeks is an inline demand series.
	Weeks []model.WeekDemand `json:"weeks"`
}

// MetricsConfig enables the observability sinks.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// ExportConfig controls the plan export written after a run.
type ExportConfig struct {
	// Format is "csv" or "json"; empty disables the export.
	Format string `json:"format"`
	// Path is the output file; empty writes to stdout.
	Path string `json:"path"`
}

// Load reads the configuration from a YAML or JSON file with optional
// CP_-prefixed environment overrides, applies defaults and validates it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("CP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the demonstration scenario configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero values with the demonstration scenario: plant
// capacity 150000, trucks of 10000, safety stock 5000, peak week 3 and a
// forced safety bypass on North Diet in week 2.
func (c *Config) SetDefaults() {
	if c.Constraints == (model.Constraints{}) {
		c.Constraints = model.Constraints{Capacity: 150_000, TruckSize: 10_000, SafetyStock: 5_000}
	}
	if c.Policy.PeakWeek == 0 && c.Policy.NorthPriority == 0 && c.Policy.SouthPriority == 0 {
		c.Policy.PeakWeek = 3
	}
	c.Policy.SetDefaults()
	if c.Injections == nil {
		c.Injections = []shipment.Injection{{Week: 2, Component: model.NorthDiet, Shortfall: 1_000}}
	}
	for i := range c.Injections {
		if c.Injections[i].Shortfall == 0 {
			c.Injections[i].Shortfall = 1_000
		}
	}
	if c.Forecast.Path == "" && len(c.Forecast.Weeks) == 0 {
		c.Forecast.Weeks = forecast.Demo()
	}
	if c.Metrics.PrometheusPort == "" {
		c.Metrics.PrometheusPort = ":9090"
	}
}

// Validate checks mandatory fields.
func (c *Config) Validate() error {
	if err := c.Constraints.Validate(); err != nil {
		return err
	}
	for _, inj := range c.Injections {
		if inj.Week <= 0 {
			return fmt.Errorf("injection week must be positive, got %d", inj.Week)
		}
		if inj.Component < 0 || inj.Component >= model.NumComponents {
			return fmt.Errorf("injection component out of range: %d", inj.Component)
		}
		if inj.Shortfall < 0 {
			return fmt.Errorf("injection shortfall must be non-negative, got %d", inj.Shortfall)
		}
	}
	if c.Metrics.InfluxEnabled && (c.Metrics.InfluxURL == "" || c.Metrics.InfluxOrg == "" || c.Metrics.InfluxBucket == "") {
		return fmt.Errorf("influx metrics require url, org and bucket")
	}
	switch c.Export.Format {
	case "", "csv", "json":
	default:
		return fmt.Errorf("unknown export format %q", c.Export.Format)
	}
	return nil
}

// Series resolves the demand forecast, loading the configured file when a
// path is set.
func (c *Config) Series() ([]model.WeekDemand, error) {
	if c.Forecast.Path != "" {
		s, err := forecast.Load(c.Forecast.Path)
		if err != nil {
			return nil, fmt.Errorf("load forecast: %w", err)
		}
		return s.Weeks, nil
	}
	return c.Forecast.Weeks, nil
}
