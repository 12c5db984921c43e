package spawn

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/lvim-tech/qlaunch/pkg/utils"
)

// Общи имена на venv директории
var venvNames = []string{"venv", ".venv", "virtualenv"}

// Interpreter returns the python interpreter to launch with: the venv's
// interpreter when venv is set, otherwise the configured fallback.
func Interpreter(venv, fallback string) string {
	if venv == "" {
		return fallback
	}
	return venvPython(utils.ExpandPath(venv))
}

// DetectVenv looks for a virtual environment beside the script and in the
// script's parent directory. Returns the venv path or "" when none found.
func DetectVenv(script string) string {
	scriptDir := filepath.Dir(utils.ExpandPath(script))

	for _, dir := range []string{filepath.Dir(scriptDir), scriptDir} {
		for _, name := range venvNames {
			candidate := filepath.Join(dir, name)
			if isVenv(candidate) {
				return candidate
			}
		}
	}

	return ""
}

// isVenv проверява дали директорията съдържа python interpreter
func isVenv(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(venvPython(dir))
	return err == nil
}

// venvPython връща пътя до interpreter-а в venv
func venvPython(venv string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venv, "Scripts", "python.exe")
	}
	return filepath.Join(venv, "bin", "python")
}
