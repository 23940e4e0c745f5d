// Package cmd wires the tlox command-line driver using cobra: a root
// command plus one file per subcommand.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tlox",
	Short: "tlox runs go-tlox scripts",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
