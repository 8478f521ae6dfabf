package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gauchoplan",
	Short: "gauchoplan manages the course catalog and quarter plans behind the planner",
	Long: `Gauchoplan owns the planner database: the course catalog, the
quarter offerings of each course, and the plans users build from them`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
