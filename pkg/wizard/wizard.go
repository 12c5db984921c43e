// Package wizard creates new app descriptors interactively. It drives the
// prompt capability for each field and writes the resulting descriptor as
// JSON into the apps directory.
package wizard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lvim-tech/qlaunch/pkg/app"
	"github.com/lvim-tech/qlaunch/pkg/vars"
)

// Run asks for the new app's fields and writes "<stem>.json" into appsDir.
// Cancelling any prompt aborts the wizard; an existing descriptor file is
// never overwritten. Returns the written path.
func Run(p vars.Prompter, appsDir string) (string, error) {
	name, err := p.AskText("App name", "")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("app name is required")
	}

	script, err := p.AskFile("Select the app script", "")
	if err != nil {
		return "", err
	}
	if script == "" {
		return "", fmt.Errorf("script path is required")
	}

	venv, err := p.AskText("Virtual environment path (empty for auto-detect)", "")
	if err != nil {
		return "", err
	}

	workDir, err := p.AskText("Working directory (empty = script directory)", "")
	if err != nil {
		return "", err
	}

	description, err := p.AskText("Description", "")
	if err != nil {
		return "", err
	}

	paramSets, err := askParameterSets(p)
	if err != nil {
		return "", err
	}

	d := &app.Descriptor{
		Name:          name,
		Script:        script,
		Venv:          venv,
		WorkingDir:    workDir,
		Description:   description,
		ParameterSets: paramSets,
	}

	return write(d, appsDir)
}

// askParameterSets пита за parameter sets докато потребителят не приключи
func askParameterSets(p vars.Prompter) ([]app.ParameterSet, error) {
	var sets []app.ParameterSet

	for {
		name, err := p.AskText("Parameter set name (empty to finish)", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return sets, nil
		}

		params, err := p.AskText(fmt.Sprintf("Parameters for %q ($var for variables)", name), "")
		if err != nil {
			return nil, err
		}

		sets = append(sets, app.ParameterSet{Name: name, Params: params})
	}
}

// write записва descriptor-а като JSON, без да презаписва съществуващ файл
func write(d *app.Descriptor, appsDir string) (string, error) {
	if err := os.MkdirAll(appsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create apps directory: %w", err)
	}

	path := filepath.Join(appsDir, slugify(d.Name)+".json")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("descriptor already exists: %s", path)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write descriptor: %w", err)
	}

	return path, nil
}

// slugify прави име на файл от display името
func slugify(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		case c == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}
