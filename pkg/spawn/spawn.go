// Package spawn starts launched apps as detached processes. A spawned
// process is fire-and-forget: it gets its own process group, inherits the
// assembled environment, and is never waited on.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"syscall"
)

// Spawner is the process-spawn capability consumed by the launch
// orchestrator. Tests supply a recording fake.
type Spawner interface {
	SpawnDetached(exe string, argv []string, dir string, env []string) (int, error)
}

// ProcessSpawner спавва истински процеси през os/exec
type ProcessSpawner struct{}

// SpawnDetached starts exe with argv in dir, detached from the launcher.
// Returns the PID of the started process.
func (ProcessSpawner) SpawnDetached(exe string, argv []string, dir string, env []string) (int, error) {
	cmd := exec.Command(exe, argv...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", exe, err)
	}

	return cmd.Process.Pid, nil
}

// MergeEnviron overlays extra onto a base "KEY=VALUE" environment.
// Extra keys override base keys; extra entries are appended in sorted key
// order so the result is deterministic.
func MergeEnviron(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, overridden := extra[key]; overridden {
				continue
			}
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+extra[k])
	}

	return merged
}

// Environ returns the launcher's own environment, the base every launch
// inherits.
func Environ() []string {
	return os.Environ()
}
