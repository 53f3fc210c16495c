package cmd

import (
	"fmt"

	"roomrenamer/pkg/config"
	"roomrenamer/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage roomrenamer configuration",
	Long:  "View or edit your local configuration settings (room map location, custom room rules, calendar identity).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		for flag, target := range map[string]*string{
			"room-map":   &cfg.RoomMapPath,
			"rules":      &cfg.RulesPath,
			"product-id": &cfg.ProductID,
			"log-level":  &cfg.LogLevel,
		} {
			if cmd.Flags().Changed(flag) {
				*target, _ = cmd.Flags().GetString(flag)
				changed = true
			}
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved")
			return nil
		}

		show, _ := cmd.Flags().GetBool("show")
		if show {
			return tui.PrintConfig(cfg)
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("room-map", "", "Path of the shared room map JSON file")
	configCmd.Flags().String("rules", "", "Path of a YAML file with extra room rules")
	configCmd.Flags().String("product-id", "", "PRODID written into exported calendars")
	configCmd.Flags().String("log-level", "", "Default log level (debug, info, warn, error)")
	configCmd.Flags().Bool("show", false, "Print the current configuration and exit")
}
