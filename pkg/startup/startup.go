// Package startup toggles launching qlaunch at login via an XDG autostart
// desktop entry.
package startup

import (
	"fmt"
	"os"
	"path/filepath"
)

const desktopEntry = `[Desktop Entry]
Type=Application
Name=qlaunch
Comment=App launcher
Exec=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`

// DesktopPath връща пътя до autostart файла
func DesktopPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autostart", "qlaunch.desktop")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "autostart", "qlaunch.desktop")
}

// Enabled проверява дали autostart entry съществува
func Enabled() bool {
	_, err := os.Stat(DesktopPath())
	return err == nil
}

// Enable записва autostart desktop entry за текущия binary
func Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	path := DesktopPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}

	content := fmt.Sprintf(desktopEntry, exe)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}

	return nil
}

// Disable маха autostart entry-то
func Disable() error {
	err := os.Remove(DesktopPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
