package simulators

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"telemetry-dashboard/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yml
var defaultRulesYAML []byte

type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

type Rule struct {
	ID   string `yaml:"id"`
	When struct {
		All []Condition `yaml:"all"`
	} `yaml:"when"`
	Then Recommendation `yaml:"then"`
}

type Condition struct {
	Field string  `yaml:"field"`
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value"`
}

type Recommendation struct {
	Action    string `yaml:"action"`
	Rationale string `yaml:"rationale"`
}

// LoadRules reads a rule file. An empty path selects the embedded default rules.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules()
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return parseRules(payload)
}

func DefaultRules() ([]Rule, error) {
	return parseRules(defaultRulesYAML)
}

func parseRules(payload []byte) ([]Rule, error) {
	var set RuleSet
	if err := yaml.Unmarshal(payload, &set); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	for _, r := range set.Rules {
		if r.Then.Action == "" {
			return nil, fmt.Errorf("parse rules: rule %q has no action", r.ID)
		}
		for _, c := range r.When.All {
			if _, ok := featureLookup[c.Field]; !ok {
				return nil, fmt.Errorf("parse rules: rule %q: unknown field %q", r.ID, c.Field)
			}
		}
	}
	return set.Rules, nil
}

// Evaluate reports whether every condition holds. A rule without conditions never fires.
func (r Rule) Evaluate(features map[string]float64) bool {
	if len(r.When.All) == 0 {
		return false
	}
	for _, cond := range r.When.All {
		val, ok := features[cond.Field]
		if !ok {
			return false
		}
		if !compare(val, cond.Value, cond.Op) {
			return false
		}
	}
	return true
}

var featureLookup = map[string]func(models.ScenarioInputs) float64{
	"rpm":                func(in models.ScenarioInputs) float64 { return in.RPM },
	"speed":              func(in models.ScenarioInputs) float64 { return in.Speed },
	"battery":            func(in models.ScenarioInputs) float64 { return in.Battery },
	"engine_load":        func(in models.ScenarioInputs) float64 { return in.EngineLoad },
	"coolant_temp":       func(in models.ScenarioInputs) float64 { return in.CoolantTemp },
	"fuel_rate":          func(in models.ScenarioInputs) float64 { return in.FuelRate },
	"acceleration_x":     func(in models.ScenarioInputs) float64 { return in.AccelerationX },
	"acceleration_y":     func(in models.ScenarioInputs) float64 { return in.AccelerationY },
	"acceleration_z":     func(in models.ScenarioInputs) float64 { return in.AccelerationZ },
	"abs_acceleration_x": func(in models.ScenarioInputs) float64 { return math.Abs(in.AccelerationX) },
	"distance_traveled":  func(in models.ScenarioInputs) float64 { return in.DistanceTraveled },
}

// Features flattens inputs into the field names rules refer to.
func Features(inputs models.ScenarioInputs) map[string]float64 {
	features := make(map[string]float64, len(featureLookup))
	for name, get := range featureLookup {
		features[name] = get(inputs)
	}
	return features
}

func compare(actual, target float64, op string) bool {
	switch strings.ToLower(op) {
	case "gte":
		return actual >= target
	case "lte":
		return actual <= target
	case "gt":
		return actual > target
	case "lt":
		return actual < target
	case "eq":
		return actual == target
	default:
		return false
	}
}
