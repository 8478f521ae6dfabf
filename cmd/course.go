/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/gaucho-tools/gauchoplan/data"
	catalogentry "github.com/gaucho-tools/gauchoplan/data/catalog-entry"
	"github.com/gaucho-tools/gauchoplan/data/db"
	"github.com/gaucho-tools/gauchoplan/planner"
	"github.com/jackc/pgx/v5/pgtype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// courseCmd represents the course command
var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Catalog maintenance for courses",
}

var courseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Adds or updates one catalog entry",
	Long: `Upserts a single course keyed on (major, course code). An existing
entry with the same key has its title, units, level, and catalog details
replaced`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "courseAdd",
		})
		major, _ := cmd.Flags().GetString("major")
		code, _ := cmd.Flags().GetString("code")
		title, _ := cmd.Flags().GetString("title")
		units, _ := cmd.Flags().GetString("units")
		level, _ := cmd.Flags().GetString("level")
		description, _ := cmd.Flags().GetString("description")
		prerequisites, _ := cmd.Flags().GetString("prerequisites")
		additionalInfo, _ := cmd.Flags().GetString("additional-info")
		catalogUrl, _ := cmd.Flags().GetString("url")

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}

		catalog := catalogentry.NewCatalogQuery(dbPool)
		err = catalog.ImportCourses(logger, ctx, []catalogentry.CourseEntry{{
			Major:          major,
			CourseCode:     code,
			Title:          title,
			Units:          pgtype.Text{String: units, Valid: units != ""},
			Level:          pgtype.Text{String: level, Valid: level != ""},
			Description:    pgtype.Text{String: description, Valid: description != ""},
			Prerequisites:  pgtype.Text{String: prerequisites, Valid: prerequisites != ""},
			AdditionalInfo: pgtype.Text{String: additionalInfo, Valid: additionalInfo != ""},
			CatalogUrl:     pgtype.Text{String: catalogUrl, Valid: catalogUrl != ""},
		}})
		if err != nil {
			logger.Error("Could not add the course: ", err)
			return
		}
		logger.Infof("Added %s %s", major, code)
	},
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists a major's catalog, optionally one quarter's offerings",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "courseList",
		})
		major, _ := cmd.Flags().GetString("major")
		quarterInput, _ := cmd.Flags().GetString("quarter")
		year, _ := cmd.Flags().GetString("year")

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}
		q := db.New(dbPool)

		if quarterInput == "" {
			courses, err := q.ListCoursesByMajor(ctx, major)
			if err != nil {
				logger.Error("Could not list courses: ", err)
				return
			}
			for _, course := range courses {
				fmt.Printf("%-12s %s (%s units)\n", course.CourseCode, course.Title, course.Units.String)
			}
			return
		}

		var quarter planner.Quarter
		if err := quarter.Scan(quarterInput); err != nil {
			logger.Error("Quarter is invalid: ", err)
			return
		}
		rows, err := q.ListTermOfferings(ctx, db.ListTermOfferingsParams{
			Major:   major,
			Quarter: string(quarter),
			Year:    pgtype.Text{String: year, Valid: year != ""},
		})
		if err != nil {
			logger.Error("Could not list term offerings: ", err)
			return
		}
		for _, row := range rows {
			fmt.Printf("%-12s %-40s %-6s %s\n",
				row.Course.CourseCode,
				row.Course.Title,
				row.Offering.Status.String,
				row.Offering.Notes.String,
			)
		}

		counts, err := q.TermStatusCounts(ctx, db.TermStatusCountsParams{
			Major:   major,
			Quarter: string(quarter),
			Year:    pgtype.Text{String: year, Valid: year != ""},
		})
		if err != nil {
			logger.Error("Could not tally statuses: ", err)
			return
		}
		fmt.Printf("%d class(es) - Open: %d Mixed: %d Full: %d\n",
			counts.Total, counts.Open, counts.Mixed, counts.Full)
	},
}

var courseMajorsCmd = &cobra.Command{
	Use:   "majors",
	Short: "Lists every major with catalog entries",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "courseMajors",
		})
		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}
		q := db.New(dbPool)

		majors, err := q.ListMajors(ctx)
		if err != nil {
			logger.Error("Could not list majors: ", err)
			return
		}
		for _, major := range majors {
			fmt.Println(major)
		}
	},
}

var courseRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Deletes a catalog entry and all of its offerings",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "courseRm",
		})
		major, _ := cmd.Flags().GetString("major")
		code, _ := cmd.Flags().GetString("code")

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}
		q := db.New(dbPool)

		course, err := q.GetCourseByCode(ctx, db.GetCourseByCodeParams{
			Major:      major,
			CourseCode: code,
		})
		if err != nil {
			if db.IsNotFound(err) {
				logger.Errorf("No course %s %s", major, code)
				return
			}
			logger.Error("Could not look up the course: ", err)
			return
		}
		if err := q.DeleteCourse(ctx, course.ID); err != nil {
			logger.Error("Could not delete the course: ", err)
			return
		}
		logger.Infof("Deleted %s %s and its offerings", major, code)
	},
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseMajorsCmd)
	courseCmd.AddCommand(courseRmCmd)

	courseAddCmd.Flags().String("major", "", "The major/department name")
	courseAddCmd.Flags().String("code", "", "The course code e.g. \"PSTAT 120A\"")
	courseAddCmd.Flags().String("title", "", "The course title")
	courseAddCmd.Flags().String("units", "", "Units, a single value or a range")
	courseAddCmd.Flags().String("level", "", "Lower, Upper, or Grad")
	courseAddCmd.Flags().String("description", "", "Long form description")
	courseAddCmd.Flags().String("prerequisites", "", "Prerequisites text")
	courseAddCmd.Flags().String("additional-info", "", "Additional free form notes")
	courseAddCmd.Flags().String("url", "", "Source catalog url")
	courseAddCmd.MarkFlagRequired("major")
	courseAddCmd.MarkFlagRequired("code")
	courseAddCmd.MarkFlagRequired("title")

	courseListCmd.Flags().String("major", "", "The major/department name")
	courseListCmd.Flags().String("quarter", "", "Filter to one quarter's offerings")
	courseListCmd.Flags().String("year", "", "Filter offerings to one year (YYYY)")
	courseListCmd.MarkFlagRequired("major")

	courseRmCmd.Flags().String("major", "", "The major/department name")
	courseRmCmd.Flags().String("code", "", "The course code")
	courseRmCmd.MarkFlagRequired("major")
	courseRmCmd.MarkFlagRequired("code")
}
