package simulators

import (
	"os"
	"path/filepath"
	"testing"

	"telemetry-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	rules, err := DefaultRules()
	require.NoError(t, err)

	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"high_rpm", "high_speed", "harsh_acceleration", "high_engine_load"}, ids)
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "rules.yml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("empty path falls back to defaults", func(t *testing.T) {
		t.Parallel()
		rules, err := LoadRules("")
		require.NoError(t, err)
		assert.Len(t, rules, 4)
	})

	t.Run("custom file", func(t *testing.T) {
		t.Parallel()
		path := write(t, `
rules:
  - id: cold_engine
    when:
      all:
        - { field: coolant_temp, op: lt, value: 60 }
        - { field: rpm, op: gte, value: 3000 }
    then:
      action: Let the engine warm up
`)
		rules, err := LoadRules(path)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, "cold_engine", rules[0].ID)
		assert.Len(t, rules[0].When.All, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read rules")
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		path := write(t, `
rules:
  - id: bad
    when:
      all:
        - { field: tyre_pressure, op: lt, value: 2 }
    then:
      action: Inflate tyres
`)
		_, err := LoadRules(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown field "tyre_pressure"`)
	})

	t.Run("missing action", func(t *testing.T) {
		t.Parallel()
		path := write(t, `
rules:
  - id: silent
    when:
      all:
        - { field: rpm, op: gt, value: 1 }
`)
		_, err := LoadRules(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no action")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := LoadRules(write(t, "rules: [::"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse rules")
	})
}

func TestRule_Evaluate(t *testing.T) {
	t.Parallel()

	features := Features(models.ScenarioInputs{RPM: 2500, Speed: 90, AccelerationX: -0.4})

	rule := func(conds ...Condition) Rule {
		var r Rule
		r.When.All = conds
		return r
	}

	tests := []struct {
		name string
		rule Rule
		want bool
	}{
		{name: "gt strict", rule: rule(Condition{Field: "rpm", Op: "gt", Value: 2500}), want: false},
		{name: "gte inclusive", rule: rule(Condition{Field: "rpm", Op: "gte", Value: 2500}), want: true},
		{name: "lt", rule: rule(Condition{Field: "speed", Op: "lt", Value: 100}), want: true},
		{name: "lte", rule: rule(Condition{Field: "speed", Op: "lte", Value: 89}), want: false},
		{name: "eq", rule: rule(Condition{Field: "speed", Op: "eq", Value: 90}), want: true},
		{name: "op is case insensitive", rule: rule(Condition{Field: "speed", Op: "EQ", Value: 90}), want: true},
		{name: "absolute acceleration", rule: rule(Condition{Field: "abs_acceleration_x", Op: "gt", Value: 0.3}), want: true},
		{name: "signed acceleration", rule: rule(Condition{Field: "acceleration_x", Op: "gt", Value: 0.3}), want: false},
		{name: "all must hold", rule: rule(Condition{Field: "rpm", Op: "gte", Value: 2500}, Condition{Field: "speed", Op: "gt", Value: 90}), want: false},
		{name: "unknown op", rule: rule(Condition{Field: "rpm", Op: "between", Value: 1}), want: false},
		{name: "unknown field", rule: rule(Condition{Field: "gear", Op: "gt", Value: 1}), want: false},
		{name: "no conditions", rule: rule(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Evaluate(features))
		})
	}
}
