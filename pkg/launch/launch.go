// Package launch coordinates one end-to-end launch attempt: resolve the
// selected parameter set's variables, expand the template, assemble the
// environment, and hand everything to the process-spawn capability.
// Responsibility ends at successful spawn; nothing is supervised after.
package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lvim-tech/qlaunch/pkg/app"
	"github.com/lvim-tech/qlaunch/pkg/envfile"
	"github.com/lvim-tech/qlaunch/pkg/log"
	"github.com/lvim-tech/qlaunch/pkg/params"
	"github.com/lvim-tech/qlaunch/pkg/spawn"
	"github.com/lvim-tech/qlaunch/pkg/utils"
	"github.com/lvim-tech/qlaunch/pkg/vars"
)

// ErrLaunchFailed wraps a spawn failure. Fatal to this attempt only;
// never retried automatically.
var ErrLaunchFailed = errors.New("launch failed")

// Request describes one launch attempt.
type Request struct {
	App *app.Descriptor
	// EnvFiles е избраният списък от env файлове (празен = без env)
	EnvFiles []string
	ParamSet app.ParameterSet
}

// Capabilities bundles the external capabilities a launch consumes.
type Capabilities struct {
	Prompt    vars.Prompter
	Clock     vars.Clock
	Clipboard vars.Clipboard
	Spawner   spawn.Spawner
}

// Result reports the outcome of an attempt. A cancelled attempt is a
// normal outcome, not an error: no process was spawned.
type Result struct {
	Attempt   string
	PID       int
	Cancelled bool
}

// Orchestrator drives launch attempts against a fixed capability set.
type Orchestrator struct {
	Caps Capabilities
	// Interpreter се използва когато app-ът няма venv
	Interpreter string
	// AutoDetectVenv включва търсене на venv до script-а
	AutoDetectVenv bool
}

// Launch runs one attempt. Variables referenced by the selected parameter
// set are resolved freshly for this attempt; a user cancel aborts with no
// process spawned.
func (o *Orchestrator) Launch(req Request) (*Result, error) {
	attempt := uuid.NewString()
	d := req.App
	logger := log.Get().With("attempt", attempt, "app", d.Name)

	// 1. Resolve variables referenced by this parameter set
	names := params.References(req.ParamSet.Params)
	values, err := vars.ResolveAll(names, d.Variables, vars.Capabilities{
		Prompt:    o.Caps.Prompt,
		Clock:     o.Caps.Clock,
		Clipboard: o.Caps.Clipboard,
	})
	if err != nil {
		if vars.IsCancelled(err) {
			logger.Info("launch cancelled by user")
			return &Result{Attempt: attempt, Cancelled: true}, nil
		}
		return nil, err
	}

	// 2. Expand the template and split into argv
	expanded := params.Expand(req.ParamSet.Params, values)
	args := params.SplitArgs(expanded)

	// 3. Assemble environment over the inherited one
	env := spawn.Environ()
	if len(req.EnvFiles) > 0 {
		extra, missing := envfile.Assemble(req.EnvFiles, nil)
		for _, path := range missing {
			logger.Warn("env file not found", "path", path)
		}
		env = spawn.MergeEnviron(env, extra)
	}

	// 4. Spawn detached
	script := utils.ExpandPath(d.Script)
	exe := o.interpreter(d, logger)
	argv := append([]string{script}, args...)
	workDir := utils.ExpandPath(d.WorkingDir)
	if d.WorkingDir == "" {
		workDir = filepath.Dir(script)
	}

	pid, err := o.Caps.Spawner.SpawnDetached(exe, argv, workDir, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}

	logger.Info("app launched", "pid", pid, "exe", exe, "params", expanded)
	return &Result{Attempt: attempt, PID: pid}, nil
}

// interpreter избира interpreter: venv от descriptor, auto-detect или fallback
func (o *Orchestrator) interpreter(d *app.Descriptor, logger *slog.Logger) string {
	venv := d.Venv
	if venv == "" && o.AutoDetectVenv {
		if detected := spawn.DetectVenv(d.Script); detected != "" {
			logger.Debug("auto-detected virtual environment", "venv", detected)
			venv = detected
		}
	}
	return spawn.Interpreter(venv, o.Interpreter)
}
