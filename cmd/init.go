package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyard/prereqs/internal/config"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [command...]",
	Short: "Write a starter requirements file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.Exists(configPath) && !forceInit {
			return fmt.Errorf("%s already exists — use --force to overwrite", configPath)
		}

		cfg := &config.Config{}
		for _, name := range args {
			cfg.Add(name, "")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d command(s)\n", configPath, len(cfg.Commands))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing requirements file")
	rootCmd.AddCommand(initCmd)
}
