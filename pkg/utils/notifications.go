// Package utils provides notification utilities for qlaunch.
// Supports configurable notification behavior via NotificationConfig.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/qlaunch/pkg/config"
)

// NotifyWithConfig sends a notification using the provided config
func NotifyWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	// If in terminal and ShowInTerminal is enabled, print to stdout
	if cfg.ShowInTerminal && IsTerminal() {
		fmt.Printf("[%s] %s\n", title, message)
		return
	}

	sendNotification(resolveTool(cfg), title, message, cfg.Timeout, "normal")
}

// ShowErrorNotificationWithConfig sends an error notification using the provided config
func ShowErrorNotificationWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	// If in terminal and ShowInTerminal is enabled, print to stderr
	if cfg.ShowInTerminal && IsTerminal() {
		fmt.Fprintf(os.Stderr, "[ERROR] [%s] %s\n", title, message)
		return
	}

	sendNotification(resolveTool(cfg), title, message, cfg.Timeout, "critical")
}

// resolveTool избира notification tool според config
func resolveTool(cfg *config.NotificationConfig) string {
	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}
	return tool
}

// detectNotificationTool намира наличен notification tool
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// sendNotification изпраща notification с избрания tool
func sendNotification(tool, title, message string, timeout int, urgency string) {
	if tool == "" {
		return
	}

	args := []string{"-u", urgency}
	if timeout > 0 {
		args = append(args, "-t", strconv.Itoa(timeout))
	}
	args = append(args, title, message)

	cmd := exec.Command(tool, args...)
	cmd.Env = os.Environ()
	cmd.Start()
}
