package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/qlaunch/pkg/config"
	"github.com/lvim-tech/qlaunch/pkg/log"
	"github.com/lvim-tech/qlaunch/pkg/menu"
	"github.com/lvim-tech/qlaunch/pkg/registry"
	"github.com/lvim-tech/qlaunch/pkg/startup"
	"github.com/lvim-tech/qlaunch/pkg/utils"
	"github.com/lvim-tech/qlaunch/pkg/wizard"
)

const version = "0.1.0"

var menuFlag string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qlaunch",
		Short:         "Configuration-driven app launcher",
		Long:          "qlaunch reads per-app descriptors and launches apps through a menu:\nenvironment selection, parameter selection, variable resolution, detached spawn.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenuLoop()
		},
	}

	root.PersistentFlags().StringVarP(&menuFlag, "menu", "m", "", "menu backend (rofi, dmenu, fzf, bemenu, fuzzel)")

	root.AddCommand(
		runCmd(),
		listCmd(),
		addCmd(),
		initCmd(),
		startupCmd(),
		versionCmd(),
	)

	return root
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the launcher menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenuLoop()
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the ordered app list",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := setup()
			if err != nil {
				return err
			}
			for _, d := range reg.Snapshot().Apps {
				line := d.Name
				if d.Description != "" {
					line += "\t" + d.Description
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Create a new app descriptor interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}
			m, err := pickMenu(cfg)
			if err != nil {
				return err
			}

			path, err := wizard.Run(newPrompter(m), cfg.GetAppsDir())
			if err != nil {
				if isCancel(err) {
					return nil
				}
				return err
			}

			fmt.Printf("Descriptor written: %s\n", path)
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the user config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}
			cfg := config.Get()
			if err := utils.EnsureDir(cfg.GetAppsDir()); err != nil {
				return err
			}

			fmt.Printf("Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Printf("App descriptors go in: %s\n", cfg.GetAppsDir())
			return nil
		},
	}
}

func startupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "startup [enable|disable|status]",
		Short:     "Manage launching qlaunch at login",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"enable", "disable", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "status"
			if len(args) > 0 {
				action = args[0]
			}

			switch action {
			case "enable":
				if err := startup.Enable(); err != nil {
					return err
				}
				fmt.Printf("Autostart enabled: %s\n", startup.DesktopPath())
			case "disable":
				if err := startup.Disable(); err != nil {
					return err
				}
				fmt.Println("Autostart disabled")
			case "status":
				if startup.Enabled() {
					fmt.Println("Autostart: enabled")
				} else {
					fmt.Println("Autostart: disabled")
				}
			default:
				return fmt.Errorf("unknown action: %s", action)
			}
			return nil
		},
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qlaunch version %s\n", version)
		},
	}
}

// setup зарежда config, logging и registry
func setup() (*config.Config, *registry.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Init(cfg.Log.Level, cfg.Log.Format)

	reg := registry.New(registry.DirSource{Dir: cfg.GetAppsDir()})
	if err := reg.Load(); err != nil {
		return nil, nil, err
	}

	return cfg, reg, nil
}

// pickMenu избира menu backend: флаг, config или auto-detect
func pickMenu(cfg *config.Config) (menu.Menu, error) {
	name := menuFlag
	if name == "" {
		name = cfg.DefaultMenu
	}
	if name != "" {
		return menu.New(name, cfg)
	}

	m := menu.DetectAvailable(cfg)
	if m == nil {
		return nil, fmt.Errorf("no menu backend available - please install rofi, dmenu, fzf, bemenu, or fuzzel")
	}
	return m, nil
}
