// Package flow decides which selection steps a launch needs before the
// process can be started.
package flow

import "github.com/lvim-tech/qlaunch/pkg/app"

// Step е една стъпка от menu flow
type Step int

const (
	// StepEnvironment selects one of the app's env files (or none).
	StepEnvironment Step = iota
	// StepParameters selects one of the app's parameter sets.
	StepParameters
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepEnvironment:
		return "environment"
	case StepParameters:
		return "parameters"
	default:
		return "unknown"
	}
}

// Plan returns the ordered selection steps for the descriptor.
// The environment step applies when the descriptor lists env files or its
// env directory yielded files at scan time (scannedEnvFiles, supplied by
// the caller). The parameter step applies when parameter sets are declared.
// The environment step always precedes the parameter step; an empty plan
// means the app launches immediately.
func Plan(d *app.Descriptor, scannedEnvFiles []string) []Step {
	var steps []Step
	if len(d.EnvFiles) > 0 || len(scannedEnvFiles) > 0 {
		steps = append(steps, StepEnvironment)
	}
	if len(d.ParameterSets) > 0 {
		steps = append(steps, StepParameters)
	}
	return steps
}
