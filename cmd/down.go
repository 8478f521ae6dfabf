package cmd

import (
	"os"

	"log/slog"

	"github.com/gaucho-tools/gauchoplan/projectpath"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

// downCmd represents the down command
var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Runs the down migrations",
	Long:  `Tears the schema back down, dropping every planner table`,
	Run: func(cmd *cobra.Command, args []string) {
		dbName := os.Getenv("DB_CONN")

		m, err := migrate.New("file://"+projectpath.Root+"/migrations", dbName)
		if err != nil {
			slog.Error("Could not set up migrations", "err", err)
			return
		}

		err = m.Down()
		if err != nil {
			slog.Error("Could not run down migrations", "err", err)
			return
		}
		slog.Info("Database has been torn down")
	},
}

func init() {
	rootCmd.AddCommand(downCmd)
}
