// Package menu provides an abstraction layer for external menu programs.
// It supports dmenu, rofi, fzf, bemenu, and fuzzel with a unified interface
// for option selection and free text input. Cancelling a menu (ESC, exit
// status 1) maps to ErrCancelled.
package menu

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/lvim-tech/qlaunch/pkg/config"
)

var (
	// ErrCancelled се връща когато потребителят натисне ESC/Cancel
	ErrCancelled = errors.New("cancelled by user")
)

// IsCancelled проверява дали грешката е от cancel
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Menu interface за различни menu системи
type Menu interface {
	Name() string
	Show(options []string, prompt string) (string, error)
	Input(prompt, def string) (string, error)
}

// New създава backend по име
func New(name string, cfg *config.Config) (Menu, error) {
	args := cfg.GetMenuArgs(name)

	switch name {
	case "rofi":
		return NewRofi(args), nil
	case "dmenu":
		return NewDmenu(args), nil
	case "fzf":
		return NewFzf(args), nil
	case "bemenu":
		return NewBemenu(args), nil
	case "fuzzel":
		return NewFuzzel(args), nil
	default:
		return nil, fmt.Errorf("unknown menu backend: %s", name)
	}
}

// DetectAvailable намира първия наличен backend
func DetectAvailable(cfg *config.Config) Menu {
	// Приоритет: rofi > dmenu > fzf > bemenu > fuzzel
	priority := []string{"rofi", "dmenu", "fzf", "bemenu", "fuzzel"}

	for _, name := range priority {
		if commandExists(name) {
			m, _ := New(name, cfg)
			return m
		}
	}

	return nil
}

// commandExists проверява дали команда съществува
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
