package flow

import (
	"reflect"
	"testing"

	"github.com/lvim-tech/qlaunch/pkg/app"
)

func TestPlan(t *testing.T) {
	paramSets := []app.ParameterSet{{Name: "Run", Params: ""}}

	tests := []struct {
		name     string
		desc     *app.Descriptor
		scanned  []string
		expected []Step
	}{
		{
			name:     "no env no params is empty plan",
			desc:     &app.Descriptor{Name: "a", Script: "a.py"},
			expected: nil,
		},
		{
			name:     "env files only",
			desc:     &app.Descriptor{Name: "a", Script: "a.py", EnvFiles: []string{"dev.env"}},
			expected: []Step{StepEnvironment},
		},
		{
			name:     "env directory yielding files only",
			desc:     &app.Descriptor{Name: "a", Script: "a.py", EnvDirectory: "envs"},
			scanned:  []string{"envs/prod.env"},
			expected: []Step{StepEnvironment},
		},
		{
			name:     "env directory yielding nothing",
			desc:     &app.Descriptor{Name: "a", Script: "a.py", EnvDirectory: "envs"},
			scanned:  nil,
			expected: nil,
		},
		{
			name:     "params only",
			desc:     &app.Descriptor{Name: "a", Script: "a.py", ParameterSets: paramSets},
			expected: []Step{StepParameters},
		},
		{
			name: "env then params in fixed order",
			desc: &app.Descriptor{
				Name: "a", Script: "a.py",
				EnvFiles:      []string{"dev.env"},
				ParameterSets: paramSets,
			},
			expected: []Step{StepEnvironment, StepParameters},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Plan(tc.desc, tc.scanned)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Plan() = %v, want %v", got, tc.expected)
			}
		})
	}
}
