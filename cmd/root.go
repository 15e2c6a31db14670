package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/frostyard/prereqs/internal/config"
	"github.com/frostyard/prereqs/internal/ctxlog"
	"github.com/frostyard/prereqs/internal/report"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "prereqs",
	Short: "Check that required commands are installed",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			ctxlog.LevelVar.Set(slog.LevelDebug)
		}
	},
	SilenceUsage: true,
}

func RootCmd() *cobra.Command {
	return rootCmd
}

// isTerminal is swapped out in tests.
var isTerminal = func() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

func newPrinter(w io.Writer) *report.Printer {
	return &report.Printer{
		Out:    w,
		Styled: os.Getenv("NO_COLOR") == "" && isTerminal(),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "requirements file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every lookup")
}
