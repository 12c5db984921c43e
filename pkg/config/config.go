// Package config provides configuration management for qlaunch.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	AppsDir     string             `toml:"apps_dir"`
	DefaultMenu string             `toml:"default_menu"`
	Interpreter string             `toml:"interpreter"`
	Menus       MenuConfig         `toml:"menus"`
	Notify      NotificationConfig `toml:"notifications"`
	Log         LogConfig          `toml:"log"`
}

// MenuConfig за всеки menu backend
type MenuConfig struct {
	Dmenu  MenuCommand `toml:"dmenu"`
	Rofi   MenuCommand `toml:"rofi"`
	Fzf    MenuCommand `toml:"fzf"`
	Bemenu MenuCommand `toml:"bemenu"`
	Fuzzel MenuCommand `toml:"fuzzel"`
}

// MenuCommand описва допълнителните аргументи за backend
type MenuCommand struct {
	Args []string `toml:"args"`
}

// NotificationConfig за desktop notifications
type NotificationConfig struct {
	Enabled        bool   `toml:"enabled"`
	Tool           string `toml:"tool"` // "auto", "dunstify", "notify-send"
	Timeout        int    `toml:"timeout"`
	ShowInTerminal bool   `toml:"show_in_terminal"`
}

// LogConfig за logging
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" или "json"
}

// ConfigFile е за четене от TOML файл (с pointers за optional полета)
type ConfigFile struct {
	AppsDir     *string                `toml:"apps_dir"`
	DefaultMenu *string                `toml:"default_menu"`
	Interpreter *string                `toml:"interpreter"`
	Menus       MenuConfig             `toml:"menus"`
	Notify      NotificationConfigFile `toml:"notifications"`
	Log         LogConfigFile          `toml:"log"`
}

// NotificationConfigFile е за четене от TOML
type NotificationConfigFile struct {
	Enabled        *bool   `toml:"enabled"`
	Tool           *string `toml:"tool"`
	Timeout        *int    `toml:"timeout"`
	ShowInTerminal *bool   `toml:"show_in_terminal"`
}

// LogConfigFile е за четене от TOML
type LogConfigFile struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

var globalConfig *Config

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "qlaunch", "config.toml")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "qlaunch", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return "/etc/qlaunch/config.toml"
}

// Load зарежда config с merge на defaults + user config
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// Опитай user config, после system config
	for _, path := range []string{GetUserConfigPath(), GetSystemConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		userCfg, err := loadConfigFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config %s: %v\n", path, err)
			continue
		}
		globalConfig = mergeConfigs(defaultCfg, userCfg)
		return globalConfig, nil
	}

	globalConfig = defaultCfg
	return globalConfig, nil
}

// Get връща глобалния config (lazy load)
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merge user config с defaults (user override defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if userCfg.AppsDir != nil && *userCfg.AppsDir != "" {
		merged.AppsDir = *userCfg.AppsDir
	}
	if userCfg.DefaultMenu != nil && *userCfg.DefaultMenu != "" {
		merged.DefaultMenu = *userCfg.DefaultMenu
	}
	if userCfg.Interpreter != nil && *userCfg.Interpreter != "" {
		merged.Interpreter = *userCfg.Interpreter
	}

	mergeMenuConfigs(&merged.Menus, &userCfg.Menus)

	if userCfg.Notify.Enabled != nil {
		merged.Notify.Enabled = *userCfg.Notify.Enabled
	}
	if userCfg.Notify.Tool != nil && *userCfg.Notify.Tool != "" {
		merged.Notify.Tool = *userCfg.Notify.Tool
	}
	if userCfg.Notify.Timeout != nil {
		merged.Notify.Timeout = *userCfg.Notify.Timeout
	}
	if userCfg.Notify.ShowInTerminal != nil {
		merged.Notify.ShowInTerminal = *userCfg.Notify.ShowInTerminal
	}

	if userCfg.Log.Level != nil && *userCfg.Log.Level != "" {
		merged.Log.Level = *userCfg.Log.Level
	}
	if userCfg.Log.Format != nil && *userCfg.Log.Format != "" {
		merged.Log.Format = *userCfg.Log.Format
	}

	return &merged
}

// mergeMenuConfigs мерджва menu backend аргументите
func mergeMenuConfigs(merged *MenuConfig, user *MenuConfig) {
	if len(user.Dmenu.Args) > 0 {
		merged.Dmenu.Args = user.Dmenu.Args
	}
	if len(user.Rofi.Args) > 0 {
		merged.Rofi.Args = user.Rofi.Args
	}
	if len(user.Fzf.Args) > 0 {
		merged.Fzf.Args = user.Fzf.Args
	}
	if len(user.Bemenu.Args) > 0 {
		merged.Bemenu.Args = user.Bemenu.Args
	}
	if len(user.Fuzzel.Args) > 0 {
		merged.Fuzzel.Args = user.Fuzzel.Args
	}
}

// GetMenuArgs връща допълнителните аргументи за конкретен backend
func (c *Config) GetMenuArgs(name string) []string {
	switch name {
	case "dmenu":
		return c.Menus.Dmenu.Args
	case "rofi":
		return c.Menus.Rofi.Args
	case "fzf":
		return c.Menus.Fzf.Args
	case "bemenu":
		return c.Menus.Bemenu.Args
	case "fuzzel":
		return c.Menus.Fuzzel.Args
	default:
		return nil
	}
}

// GetAppsDir връща директорията с app descriptors (с разширен ~)
func (c *Config) GetAppsDir() string {
	dir := c.AppsDir
	if len(dir) > 0 && dir[0] == '~' {
		dir = filepath.Join(os.Getenv("HOME"), dir[1:])
	}
	return dir
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
