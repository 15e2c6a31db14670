package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyard/prereqs/pathlist"
)

var listPath bool

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the search path commands are resolved against",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		expanded := pathlist.FromEnv()
		out := cmd.OutOrStdout()

		if !listPath {
			fmt.Fprintln(out, expanded)
			return nil
		}
		for _, dir := range pathlist.Split(expanded) {
			fmt.Fprintln(out, dir)
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().BoolVarP(&listPath, "list", "l", false, "print one entry per line")
	rootCmd.AddCommand(pathCmd)
}
