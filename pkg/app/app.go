// Package app defines the application descriptor model for qlaunch.
// A descriptor is a single app's configuration record: the script to run,
// optional environment sources, typed variables, and parameter sets.
package app

import (
	"fmt"
	"path/filepath"
)

// VarType е затворен набор от типове променливи
type VarType string

const (
	VarFilePicker   VarType = "filepicker"
	VarFolderPicker VarType = "folderpicker"
	VarInput        VarType = "input"
	VarDatetime     VarType = "datetime"
	VarTimestamp    VarType = "timestamp"
	VarClipboard    VarType = "clipboard"
)

// Valid проверява дали типът е от затворения набор
func (t VarType) Valid() bool {
	switch t {
	case VarFilePicker, VarFolderPicker, VarInput, VarDatetime, VarTimestamp, VarClipboard:
		return true
	}
	return false
}

// VariableSpec describes a named, typed placeholder resolved at launch time.
// Format is meaningful only for datetime variables and is ignored elsewhere.
type VariableSpec struct {
	Type    VarType `json:"type" mapstructure:"type"`
	Prompt  string  `json:"prompt,omitempty" mapstructure:"prompt"`
	Default string  `json:"default,omitempty" mapstructure:"default"`
	Format  string  `json:"format,omitempty" mapstructure:"format"`
}

// ParameterSet is a named command-line template. The template may reference
// declared variables as $name tokens.
type ParameterSet struct {
	Name   string `json:"name" mapstructure:"name"`
	Params string `json:"params" mapstructure:"params"`
}

// Descriptor represents a single app's configuration record.
// Immutable once loaded; replaced wholesale on registry reload.
type Descriptor struct {
	// Stem е името на descriptor файла без разширение,
	// идентификаторът използван в master.json
	Stem string `json:"-" mapstructure:"-"`

	Name          string                  `json:"name" mapstructure:"name"`
	Script        string                  `json:"script" mapstructure:"script"`
	Icon          string                  `json:"icon,omitempty" mapstructure:"icon"`
	Venv          string                  `json:"venv,omitempty" mapstructure:"venv"`
	WorkingDir    string                  `json:"working_directory,omitempty" mapstructure:"working_directory"`
	Description   string                  `json:"description,omitempty" mapstructure:"description"`
	EnvFiles      []string                `json:"env_files,omitempty" mapstructure:"env_files"`
	EnvDirectory  string                  `json:"env_directory,omitempty" mapstructure:"env_directory"`
	Variables     map[string]VariableSpec `json:"variables,omitempty" mapstructure:"variables"`
	ParameterSets []ParameterSet          `json:"parameter_sets,omitempty" mapstructure:"parameter_sets"`
}

// Validate проверява структурните изисквания на descriptor-а
func (d *Descriptor) Validate() error {
	if d.Script == "" {
		return fmt.Errorf("missing required field: script")
	}
	for name, spec := range d.Variables {
		if !spec.Type.Valid() {
			return fmt.Errorf("variable %q: unknown type %q", name, spec.Type)
		}
	}
	return nil
}

// EffectiveWorkingDir returns the configured working directory,
// falling back to the script's containing directory.
func (d *Descriptor) EffectiveWorkingDir() string {
	if d.WorkingDir != "" {
		return d.WorkingDir
	}
	return filepath.Dir(d.Script)
}

// DefaultParameterSet returns the implicit parameter set used when the
// descriptor declares none: an empty template launched as "Run".
func DefaultParameterSet() ParameterSet {
	return ParameterSet{Name: "Run", Params: ""}
}
