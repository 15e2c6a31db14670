package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyard/prereqs/internal/config"
	"github.com/frostyard/prereqs/internal/ctxlog"
	"github.com/frostyard/prereqs/pathlist"
	"github.com/frostyard/prereqs/prereq"
)

var quiet bool

// newLooker is swapped out in tests.
var newLooker = func() prereq.Looker {
	return &prereq.SystemLooker{}
}

var checkCmd = &cobra.Command{
	Use:   "check [command...]",
	Short: "Verify that commands are installed",
	Long: `Verify that every command is on PATH, with a leading ~ in PATH entries
expanded to the home directory. Commands come from the arguments, or from the
requirements file when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid %s: %w", configPath, err)
		}

		names := args
		if len(names) == 0 {
			names = cfg.Names()
		}

		ctx := cmd.Context()
		searchPath := pathlist.FromEnv()
		ctxlog.Debug(ctx, "checking prerequisites", "commands", names, "path", searchPath)

		paths, err := prereq.Check(ctx, newLooker(), searchPath, names)

		var cerr *prereq.CheckError
		if errors.As(err, &cerr) {
			if !quiet {
				newPrinter(cmd.ErrOrStderr()).Missing(cerr, cfg.Hints())
			}
			return fmt.Errorf("missing prerequisites")
		}
		if err != nil {
			return err
		}

		if !quiet {
			newPrinter(cmd.OutOrStdout()).Found(names, paths)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, only set the exit status")
	rootCmd.AddCommand(checkCmd)
}
