package forecast

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colaworks/colaplan/core/model"
)

// Series is a demand forecast file: an ordered list of weekly demand vectors.
type Series struct {
	Weeks []model.WeekDemand `json:"weeks" yaml:"weeks"`
}

// Validate checks that the series is non-empty and every week is sound.
func (s Series) Validate() error {
	if len(s.Weeks) == 0 {
		return &model.ConfigurationError{Field: "forecast", Reason: "must contain at least one week"}
	}
	for _, w := range s.Weeks {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a Series from a JSON or YAML file.
func Load(path string) (Series, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Series{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var s Series
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &s)
	case ".json":
		err = json.Unmarshal(b, &s)
	default:
		return Series{}, fmt.Errorf("unsupported forecast format: %s", ext)
	}
	if err != nil {
		return Series{}, err
	}
	return s, s.Validate()
}

// Decode reads a Series from r in the given format ("yaml" or "json").
func Decode(r io.Reader, format string) (Series, error) {
	var s Series
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return s, err
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return s, err
		}
	default:
		return s, fmt.Errorf("unsupported format: %s", format)
	}
	return s, s.Validate()
}

// Demo returns the synthetic four-week forecast used by the demonstration
// scenario, with a peak in week 3.
func Demo() []model.WeekDemand {
	return []model.WeekDemand{
		{Week: 1, Demand: model.DemandVector{28000, 18000, 22000, 12000}},
		{Week: 2, Demand: model.DemandVector{42000, 28000, 35000, 25000}},
		{Week: 3, Demand: model.DemandVector{55000, 45000, 48000, 42000}},
		{Week: 4, Demand: model.DemandVector{38000, 32000, 35000, 25000}},
	}
}
