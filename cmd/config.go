package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyard/prereqs/internal/config"
)

var addHint string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the requirements file",
}

var configAddCmd = &cobra.Command{
	Use:   "add <command>",
	Short: "Require a command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if !cfg.Add(args[0], addHint) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already required.\n", args[0])
			return nil
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[0], configPath)
		return nil
	},
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove <command>",
	Short: "Stop requiring a command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if !cfg.Remove(args[0]) {
			return fmt.Errorf("%s is not listed in %s", args[0], configPath)
		}
		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[0], configPath)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the required commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range cfg.Commands {
			if c.Hint != "" {
				fmt.Fprintf(out, "%s\t%s\n", c.Name, c.Hint)
				continue
			}
			fmt.Fprintln(out, c.Name)
		}
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&addHint, "hint", "", "how to install the command, shown when it is missing")
	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configRemoveCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
