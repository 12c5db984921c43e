package main

import (
	"fmt"
	"path/filepath"

	"github.com/lvim-tech/qlaunch/pkg/app"
	"github.com/lvim-tech/qlaunch/pkg/config"
	"github.com/lvim-tech/qlaunch/pkg/envfile"
	"github.com/lvim-tech/qlaunch/pkg/flow"
	"github.com/lvim-tech/qlaunch/pkg/launch"
	"github.com/lvim-tech/qlaunch/pkg/menu"
	"github.com/lvim-tech/qlaunch/pkg/prompt"
	"github.com/lvim-tech/qlaunch/pkg/spawn"
	"github.com/lvim-tech/qlaunch/pkg/utils"
	"github.com/lvim-tech/qlaunch/pkg/vars"
)

const (
	reloadEntry = "⟳ Reload apps"
	quitEntry   = "✕ Quit"
	noEnvEntry  = "No env file"
)

// runMenuLoop е интерактивният main loop: apps → env → params → launch
func runMenuLoop() error {
	cfg, reg, err := setup()
	if err != nil {
		return err
	}

	m, err := pickMenu(cfg)
	if err != nil {
		return err
	}

	orch := &launch.Orchestrator{
		Caps: launch.Capabilities{
			Prompt:    newPrompter(m),
			Clock:     prompt.SystemClock{},
			Clipboard: prompt.SystemClipboard{},
			Spawner:   spawn.ProcessSpawner{},
		},
		Interpreter:    cfg.Interpreter,
		AutoDetectVenv: true,
	}

	for {
		snap := reg.Snapshot()

		options := make([]string, 0, len(snap.Apps)+2)
		for _, d := range snap.Apps {
			options = append(options, d.Name)
		}
		options = append(options, reloadEntry, quitEntry)

		choice, err := m.Show(options, "qlaunch")
		if err != nil {
			if menu.IsCancelled(err) {
				return nil
			}
			return err
		}

		switch choice {
		case quitEntry:
			return nil
		case reloadEntry:
			if err := reg.Load(); err != nil {
				utils.ShowErrorNotificationWithConfig(&cfg.Notify, "qlaunch", err.Error())
			}
			continue
		}

		d := snap.Find(choice)
		if d == nil {
			continue
		}

		launched := runApp(cfg, m, orch, d)
		if launched {
			return nil
		}
	}
}

// runApp кара потребителя през selection стъпките и лаунчва app-а.
// Връща true при успешен launch, false при cancel/грешка (остава в loop-а).
func runApp(cfg *config.Config, m menu.Menu, orch *launch.Orchestrator, d *app.Descriptor) bool {
	scanned := envfile.ScanDir(d.EnvDirectory)
	steps := flow.Plan(d, scanned)

	var selectedEnv []string
	paramSet := app.DefaultParameterSet()

	for _, step := range steps {
		switch step {
		case flow.StepEnvironment:
			path, ok := selectEnvFile(m, d, scanned)
			if !ok {
				return false
			}
			if path != "" {
				selectedEnv = []string{path}
			}

		case flow.StepParameters:
			ps, ok := selectParameterSet(m, d)
			if !ok {
				return false
			}
			paramSet = ps
		}
	}

	result, err := orch.Launch(launch.Request{App: d, EnvFiles: selectedEnv, ParamSet: paramSet})
	if err != nil {
		utils.ShowErrorNotificationWithConfig(&cfg.Notify, d.Name, err.Error())
		return false
	}
	if result.Cancelled {
		return false
	}

	utils.NotifyWithConfig(&cfg.Notify, "qlaunch", fmt.Sprintf("Launched %s (pid %d)", d.Name, result.PID))
	return true
}

// selectEnvFile показва environment менюто; "" = без env файл
func selectEnvFile(m menu.Menu, d *app.Descriptor, scanned []string) (string, bool) {
	options := []string{noEnvEntry}
	byLabel := make(map[string]string)

	for _, path := range append(append([]string{}, d.EnvFiles...), scanned...) {
		label := envLabel(path)
		if prev, exists := byLabel[label]; exists {
			if prev == path {
				continue
			}
			// Същото име от друга директория: уточни етикета
			label = fmt.Sprintf("%s (%s)", label, filepath.Dir(path))
		}
		byLabel[label] = path
		options = append(options, label)
	}

	choice, err := m.Show(options, d.Name+" environment")
	if err != nil {
		return "", false
	}
	if choice == noEnvEntry {
		return "", true
	}

	path, ok := byLabel[choice]
	return path, ok
}

// selectParameterSet показва parameters менюто
func selectParameterSet(m menu.Menu, d *app.Descriptor) (app.ParameterSet, bool) {
	options := make([]string, 0, len(d.ParameterSets))
	for _, ps := range d.ParameterSets {
		options = append(options, ps.Name)
	}

	choice, err := m.Show(options, d.Name+" parameters")
	if err != nil {
		return app.ParameterSet{}, false
	}

	for _, ps := range d.ParameterSets {
		if ps.Name == choice {
			return ps, true
		}
	}
	return app.ParameterSet{}, false
}

// envLabel е menu етикетът за env файл
func envLabel(path string) string {
	return filepath.Base(path)
}

func newPrompter(m menu.Menu) vars.Prompter {
	return &prompt.MenuPrompter{Menu: m}
}

func isCancel(err error) bool {
	return vars.IsCancelled(err) || menu.IsCancelled(err)
}
