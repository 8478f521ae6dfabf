package cmd

import (
	"log/slog"

	"github.com/gaucho-tools/gauchoplan/data/testdb"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drops and recreates the whole schema",
	Long: `Runs the down and then up migrations against DB_CONN, wiping all
data. Refuses to run unless the LOCAL=true env variable is set`,
	Run: func(cmd *cobra.Command, args []string) {
		err := testdb.ReloadDb()
		if err != nil {
			slog.Error("Could not reset the database", "err", err)
			return
		}
		slog.Info("Database has been reset")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
