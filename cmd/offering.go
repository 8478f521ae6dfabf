/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/gaucho-tools/gauchoplan/data"
	"github.com/gaucho-tools/gauchoplan/data/db"
	"github.com/gaucho-tools/gauchoplan/planner"
	"github.com/jackc/pgx/v5/pgtype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// offeringCmd represents the offering command
var offeringCmd = &cobra.Command{
	Use:   "offering",
	Short: "Term offering maintenance",
}

var offeringAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedules a course for a quarter",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "offeringAdd",
		})
		major, _ := cmd.Flags().GetString("major")
		code, _ := cmd.Flags().GetString("code")
		quarterInput, _ := cmd.Flags().GetString("quarter")
		year, _ := cmd.Flags().GetString("year")
		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")
		instructor, _ := cmd.Flags().GetString("instructor")
		email, _ := cmd.Flags().GetString("email")
		meeting, _ := cmd.Flags().GetString("meeting")

		var quarter planner.Quarter
		if err := quarter.Scan(quarterInput); err != nil {
			logger.Error("Quarter is invalid: ", err)
			return
		}

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
				logger.Errorf("No course %s %s to schedule", major, code)
				return
			}
			logger.Error("Could not look up the course: ", err)
			return
		}

		offering, err := q.InsertOffering(ctx, db.InsertOfferingParams{
			CourseID:        course.ID,
			Quarter:         string(quarter),
			Year:            pgtype.Text{String: year, Valid: year != ""},
			Status:          pgtype.Text{String: planner.NormalizeStatus(status), Valid: status != ""},
			Notes:           pgtype.Text{String: notes, Valid: notes != ""},
			InstructorName:  pgtype.Text{String: instructor, Valid: instructor != ""},
			InstructorEmail: pgtype.Text{String: email, Valid: email != ""},
			MeetingPattern:  pgtype.Text{String: meeting, Valid: meeting != ""},
		})
		if err != nil {
			logger.Error("Could not insert the offering: ", err)
			return
		}
		logger.Infof("Scheduled %s for %s %s (offering %d)", code, quarter, year, offering.ID)
	},
}

var offeringListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every term a course is offered",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "offeringList",
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

		offerings, err := q.ListOfferingsForCourse(ctx, course.ID)
		if err != nil {
			logger.Error("Could not list the offerings: ", err)
			return
		}
		for _, offering := range offerings {
			fmt.Printf("%-6d %-8s %-6s %-6s %-24s %s\n",
				offering.ID,
				offering.Quarter,
				offering.Year.String,
				offering.Status.String,
				offering.InstructorName.String,
				offering.MeetingPattern.String,
			)
		}
	},
}

var offeringStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Updates the enrollment status and notes of one offering",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "offeringStatus",
		})
		id, _ := cmd.Flags().GetInt64("id")
		status, _ := cmd.Flags().GetString("status")
		notes, _ := cmd.Flags().GetString("notes")

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}
		q := db.New(dbPool)

		err = q.UpdateOfferingStatus(ctx, db.UpdateOfferingStatusParams{
			ID:     id,
			Status: pgtype.Text{String: planner.NormalizeStatus(status), Valid: status != ""},
			Notes:  pgtype.Text{String: notes, Valid: notes != ""},
		})
		if err != nil {
			logger.Error("Could not update the offering: ", err)
			return
		}
		logger.Infof("Updated offering %d", id)
	},
}

var offeringClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes a major's offerings for one term",
	Long: `Deletes every offering of the major for the given quarter and year,
usually right before a fresh term load`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "offeringClear",
		})
		major, _ := cmd.Flags().GetString("major")
		quarterInput, _ := cmd.Flags().GetString("quarter")
		year, _ := cmd.Flags().GetString("year")

		var quarter planner.Quarter
		if err := quarter.Scan(quarterInput); err != nil {
			logger.Error("Quarter is invalid: ", err)
			return
		}

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}
		q := db.New(dbPool)

		deleted, err := q.DeleteTermOfferings(ctx, db.DeleteTermOfferingsParams{
			Major:   major,
			Quarter: string(quarter),
			Year:    pgtype.Text{String: year, Valid: year != ""},
		})
		if err != nil {
			logger.Error("Could not clear the term: ", err)
			return
		}
		fmt.Printf("Removed %d offering(s) for %s %s %s\n", deleted, major, quarter, year)
	},
}

func init() {
	rootCmd.AddCommand(offeringCmd)
	offeringCmd.AddCommand(offeringAddCmd)
	offeringCmd.AddCommand(offeringListCmd)
	offeringCmd.AddCommand(offeringStatusCmd)
	offeringCmd.AddCommand(offeringClearCmd)

	offeringAddCmd.Flags().String("major", "", "The major/department name")
	offeringAddCmd.Flags().String("code", "", "The course code")
	offeringAddCmd.Flags().String("quarter", "", "Fall, Winter, Spring, or Summer")
	offeringAddCmd.Flags().String("year", "", "The year (YYYY)")
	offeringAddCmd.Flags().String("status", "", "Open, Mixed, or Full")
	offeringAddCmd.Flags().String("notes", "", "Free text e.g. seat counts")
	offeringAddCmd.Flags().String("instructor", "", "Instructor name")
	offeringAddCmd.Flags().String("email", "", "Instructor email")
	offeringAddCmd.Flags().String("meeting", "", "Days/time/location pattern")
	offeringAddCmd.MarkFlagRequired("major")
	offeringAddCmd.MarkFlagRequired("code")
	offeringAddCmd.MarkFlagRequired("quarter")

	offeringListCmd.Flags().String("major", "", "The major/department name")
	offeringListCmd.Flags().String("code", "", "The course code")
	offeringListCmd.MarkFlagRequired("major")
	offeringListCmd.MarkFlagRequired("code")

	offeringStatusCmd.Flags().Int64("id", 0, "The offering id")
	offeringStatusCmd.Flags().String("status", "", "Open, Mixed, or Full")
	offeringStatusCmd.Flags().String("notes", "", "Free text e.g. seat counts")
	offeringStatusCmd.MarkFlagRequired("id")

	offeringClearCmd.Flags().String("major", "", "The major/department name")
	offeringClearCmd.Flags().String("quarter", "", "Fall, Winter, Spring, or Summer")
	offeringClearCmd.Flags().String("year", "", "The year (YYYY)")
	offeringClearCmd.MarkFlagRequired("major")
	offeringClearCmd.MarkFlagRequired("quarter")
}
