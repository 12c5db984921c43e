// Package prompt implements the user-facing capabilities consumed during
// variable resolution: text input through the active menu backend, file
// and folder pickers through zenity when present, and clipboard reading
// through the usual Wayland/X11 tools.
package prompt

import (
	"os/exec"
	"strings"
	"time"

	"github.com/lvim-tech/qlaunch/pkg/menu"
	"github.com/lvim-tech/qlaunch/pkg/utils"
	"github.com/lvim-tech/qlaunch/pkg/vars"
)

// MenuPrompter asks through the active menu backend, with zenity dialogs
// for file and folder selection when zenity is installed.
type MenuPrompter struct {
	Menu menu.Menu
}

// AskText пита за свободен текст през menu backend-а
func (p *MenuPrompter) AskText(prompt, def string) (string, error) {
	value, err := p.Menu.Input(prompt, def)
	if err != nil {
		return "", translateCancel(err)
	}
	return value, nil
}

// AskFile пита за файл: zenity file selection или текстов вход
func (p *MenuPrompter) AskFile(prompt, def string) (string, error) {
	if utils.CommandExists("zenity") {
		return runZenity(prompt, def, false)
	}
	return p.AskText(prompt, def)
}

// AskFolder пита за директория: zenity или текстов вход
func (p *MenuPrompter) AskFolder(prompt, def string) (string, error) {
	if utils.CommandExists("zenity") {
		return runZenity(prompt, def, true)
	}
	return p.AskText(prompt, def)
}

// runZenity отваря zenity file-selection диалог
func runZenity(prompt, def string, directory bool) (string, error) {
	args := []string{"--file-selection", "--title", prompt}
	if directory {
		args = append(args, "--directory")
	}
	if def != "" {
		args = append(args, "--filename", utils.ExpandPath(def))
	}

	output, err := exec.Command("zenity", args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", vars.ErrCancelled
		}
		return "", err
	}

	return strings.TrimSpace(string(output)), nil
}

// translateCancel превежда menu cancel към resolution cancel
func translateCancel(err error) error {
	if menu.IsCancelled(err) {
		return vars.ErrCancelled
	}
	return err
}

// SystemClock supplies the real current time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
