package startup

import (
	"os"
	"strings"
	"testing"
)

func TestEnableDisable(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Enabled() {
		t.Fatal("Enabled() = true before Enable()")
	}

	if err := Enable(); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Enable()")
	}

	data, err := os.ReadFile(DesktopPath())
	if err != nil {
		t.Fatalf("failed to read desktop entry: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[Desktop Entry]") || !strings.Contains(content, "Exec=") {
		t.Errorf("desktop entry malformed:\n%s", content)
	}

	if err := Disable(); err != nil {
		t.Fatalf("Disable() error: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() = true after Disable()")
	}

	// Повторен Disable е no-op
	if err := Disable(); err != nil {
		t.Errorf("second Disable() error: %v", err)
	}
}
