package app

import (
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	data := `{
		"name": "Data Importer",
		"script": "~/tools/importer/main.py",
		"venv": "~/tools/importer/venv",
		"working_directory": "~/tools/importer",
		"description": "Imports CSV exports",
		"env_files": ["~/tools/importer/dev.env"],
		"env_directory": "~/tools/importer/envs",
		"variables": {
			"input": {"type": "filepicker", "prompt": "Pick a CSV", "default": "~/exports/latest.csv"},
			"when": {"type": "datetime", "format": "%Y-%m-%d"}
		},
		"parameter_sets": [
			{"name": "Import file", "params": "--input $input --date $when"},
			{"name": "Dry run", "params": "--dry-run"}
		]
	}`

	d, err := Parse("importer.json", []byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if d.Stem != "importer" {
		t.Errorf("Stem = %q, want %q", d.Stem, "importer")
	}
	if d.Name != "Data Importer" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.Script != "~/tools/importer/main.py" {
		t.Errorf("Script = %q", d.Script)
	}
	if len(d.EnvFiles) != 1 || d.EnvDirectory == "" {
		t.Errorf("env sources not decoded: %v %q", d.EnvFiles, d.EnvDirectory)
	}

	input, ok := d.Variables["input"]
	if !ok || input.Type != VarFilePicker || input.Prompt != "Pick a CSV" {
		t.Errorf("variable input = %+v", input)
	}
	when := d.Variables["when"]
	if when.Type != VarDatetime || when.Format != "%Y-%m-%d" {
		t.Errorf("variable when = %+v", when)
	}

	if len(d.ParameterSets) != 2 || d.ParameterSets[0].Name != "Import file" {
		t.Errorf("parameter sets = %+v", d.ParameterSets)
	}
}

func TestParseYAML(t *testing.T) {
	data := `
name: Backup
script: /opt/backup/run.py
parameter_sets:
  - name: Full
    params: --full
variables:
  target:
    type: folderpicker
`
	d, err := Parse("backup.yaml", []byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if d.Name != "Backup" || d.Variables["target"].Type != VarFolderPicker {
		t.Errorf("yaml descriptor = %+v", d)
	}
}

func TestParseDefaults(t *testing.T) {
	d, err := Parse("my_app.json", []byte(`{"script": "run.py", "parameter_sets": [{"params": "-x"}]}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if d.Name != "my_app" {
		t.Errorf("Name = %q, want stem fallback", d.Name)
	}
	if d.ParameterSets[0].Name != "Unnamed" {
		t.Errorf("ParameterSets[0].Name = %q, want %q", d.ParameterSets[0].Name, "Unnamed")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		wantErr string
	}{
		{
			name:    "invalid json",
			path:    "a.json",
			data:    "{not json",
			wantErr: "invalid json",
		},
		{
			name:    "missing script",
			path:    "a.json",
			data:    `{"name": "a"}`,
			wantErr: "script",
		},
		{
			name:    "unknown variable type",
			path:    "a.json",
			data:    `{"script": "a.py", "variables": {"x": {"type": "telepathy"}}}`,
			wantErr: "unknown type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.path, []byte(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestEffectiveWorkingDir(t *testing.T) {
	d := &Descriptor{Script: "/opt/tool/run.py"}
	if got := d.EffectiveWorkingDir(); got != "/opt/tool" {
		t.Errorf("EffectiveWorkingDir() = %q, want script directory", got)
	}

	d.WorkingDir = "/srv/work"
	if got := d.EffectiveWorkingDir(); got != "/srv/work" {
		t.Errorf("EffectiveWorkingDir() = %q, want configured directory", got)
	}
}
