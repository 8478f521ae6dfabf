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

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Quarter plan entries for a user",
	Long: `Plan entries are a user's scratchpad: the course code is copied as
plain text so a plan can hold GE placeholders or courses that are not in the
catalog at all`,
}

var planAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Adds a course to a user's quarter plan",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "planAdd",
		})
		userID, _ := cmd.Flags().GetString("user")
		quarterInput, _ := cmd.Flags().GetString("quarter")
		year, _ := cmd.Flags().GetString("year")
		code, _ := cmd.Flags().GetString("course")
		units, _ := cmd.Flags().GetFloat64("units")
		entryType, _ := cmd.Flags().GetString("type")

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

		entry, err := q.InsertPlanEntry(ctx, db.InsertPlanEntryParams{
			UserID:     userID,
			Quarter:    string(quarter),
			Year:       pgtype.Text{String: year, Valid: year != ""},
			CourseCode: code,
			Units:      pgtype.Float8{Float64: units, Valid: cmd.Flags().Changed("units")},
			Type:       pgtype.Text{String: entryType, Valid: entryType != ""},
		})
		if err != nil {
			logger.Error("Could not add the plan entry: ", err)
			return
		}
		logger.Infof("Added %s to %s's %s plan (entry %d)", code, userID, quarter, entry.ID)
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints a user's quarter plan with unit totals",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "planList",
		})
		userID, _ := cmd.Flags().GetString("user")
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

		entries, err := q.ListPlanEntries(ctx, db.ListPlanEntriesParams{
			UserID:  userID,
			Quarter: string(quarter),
			Year:    pgtype.Text{String: year, Valid: year != ""},
		})
		if err != nil {
			logger.Error("Could not list the plan: ", err)
			return
		}

		for _, entry := range entries {
			units := "n/a"
			if entry.Units.Valid {
				units = fmt.Sprintf("%g", entry.Units.Float64)
			}
			fmt.Printf("%-6d %-14s %-6s %s\n", entry.ID, entry.CourseCode, units, entry.Type.String)
		}

		summary := planner.Summarize(entries)
		fmt.Printf("Planned units: %g (%s load)\n", summary.TotalUnits, summary.Load)
		for entryType, units := range summary.UnitsByType {
			fmt.Printf("  %s: %g\n", entryType, units)
		}
	},
}

var planRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Removes one plan entry, or a whole quarter with --all",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.WithFields(log.Fields{
			"job": "planRm",
		})
		id, _ := cmd.Flags().GetInt64("id")
		all, _ := cmd.Flags().GetBool("all")
		userID, _ := cmd.Flags().GetString("user")
		quarterInput, _ := cmd.Flags().GetString("quarter")
		year, _ := cmd.Flags().GetString("year")

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to db: ", err)
			return
		}
		q := db.New(dbPool)

		if !all {
			if id == 0 {
				logger.Error("Either --id or --all is required")
				return
			}
			if err := q.DeletePlanEntry(ctx, id); err != nil {
				logger.Error("Could not remove the plan entry: ", err)
				return
			}
			logger.Infof("Removed plan entry %d", id)
			return
		}

		var quarter planner.Quarter
		if err := quarter.Scan(quarterInput); err != nil {
			logger.Error("Quarter is invalid: ", err)
			return
		}
		removed, err := q.DeletePlan(ctx, db.DeletePlanParams{
			UserID:  userID,
			Quarter: string(quarter),
			Year:    pgtype.Text{String: year, Valid: year != ""},
		})
		if err != nil {
			logger.Error("Could not clear the plan: ", err)
			return
		}
		logger.Infof("Removed %d plan entries", removed)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planRmCmd)

	planAddCmd.Flags().String("user", "", "The SSO user id")
	planAddCmd.Flags().String("quarter", "", "Fall, Winter, Spring, or Summer")
	planAddCmd.Flags().String("year", "", "The year (YYYY)")
	planAddCmd.Flags().String("course", "", "The course code, not validated against the catalog")
	planAddCmd.Flags().Float64("units", 0, "Planned units")
	planAddCmd.Flags().String("type", "", "Major, GE, Elective, ...")
	planAddCmd.MarkFlagRequired("user")
	planAddCmd.MarkFlagRequired("quarter")
	planAddCmd.MarkFlagRequired("course")

	planListCmd.Flags().String("user", "", "The SSO user id")
	planListCmd.Flags().String("quarter", "", "Fall, Winter, Spring, or Summer")
	planListCmd.Flags().String("year", "", "The year (YYYY)")
	planListCmd.MarkFlagRequired("user")
	planListCmd.MarkFlagRequired("quarter")

	planRmCmd.Flags().Int64("id", 0, "The plan entry id")
	planRmCmd.Flags().Bool("all", false, "Remove the user's whole quarter")
	planRmCmd.Flags().String("user", "", "The SSO user id (with --all)")
	planRmCmd.Flags().String("quarter", "", "The quarter (with --all)")
	planRmCmd.Flags().String("year", "", "The year (with --all)")
}
