// Package utils provides common utility functions for qlaunch.
// It includes helpers for file operations, path expansion, and command lookup.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
)

// CommandExists проверява дали команда съществува в PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandPath разширява ~ и environment variables в път
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home := os.Getenv("HOME")
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path)
}

// EnsureDir създава директория ако не съществува
func EnsureDir(path string) error {
	path = ExpandPath(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// FileExists проверява дали файл съществува
func FileExists(path string) bool {
	path = ExpandPath(path)
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory проверява дали пътят е директория
func IsDirectory(path string) bool {
	path = ExpandPath(path)
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsTerminal проверява дали stdout е терминал
func IsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
