package cmd

import (
	"context"
	"fmt"

	"github.com/gaucho-tools/gauchoplan/data"
	catalogentry "github.com/gaucho-tools/gauchoplan/data/catalog-entry"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints catalog summary statistics",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "stats",
		})
		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}

		catalog := catalogentry.NewCatalogQuery(dbPool)
		stats, err := catalog.CatalogStats(ctx)
		if err != nil {
			logger.Error("Could not gather stats: ", err)
			return
		}

		fmt.Printf("Courses: %d\n", stats.TotalCourses)
		fmt.Printf("Offerings: %d\n", stats.TotalOfferings)
		fmt.Printf("Plan entries: %d\n", stats.TotalPlanRows)
		for _, row := range stats.CoursesPerMajor {
			fmt.Printf("  %-40s %d\n", row.Major, row.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
