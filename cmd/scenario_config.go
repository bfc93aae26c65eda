package cmd

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario describes one named preset in the scenarios file.
type Scenario struct {
	Students     int     `yaml:"students"`
	Duration     int     `yaml:"duration"`
	DurationLock bool    `yaml:"duration_lock"`
	MaxCredits   float64 `yaml:"max_credits"`
	Stopouts     bool    `yaml:"stopouts"`
	MeanGrade    float64 `yaml:"mean_grade"`
	GradeStdev   float64 `yaml:"grade_stdev"`
	StopoutRate  float64 `yaml:"stopout_rate"`
}

// ScenarioFile represents the full scenarios.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenario reads the named preset from the scenarios file. Any read,
// parse, or lookup failure is fatal: a misspelled scenario must never run
// with silently substituted defaults.
func LoadScenario(path, name string) Scenario {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("Failed to read scenarios file: %v", err)
	}
	cfg, err := parseScenarios(data)
	if err != nil {
		logrus.Fatalf("Failed to parse scenarios file: %v", err)
	}
	sc, ok := cfg.Scenarios[name]
	if !ok {
		logrus.Fatalf("Scenario %q not found in %s", name, path)
	}
	return sc
}

// parseScenarios decodes with strict field checking so typos in scenario
// keys cause errors instead of zero values.
func parseScenarios(data []byte) (*ScenarioFile, error) {
	var cfg ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
