package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestPlanEntryTakesAnyCourseCode(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()

	// no referential tie to courses: a code that was never in the catalog
	// must be accepted
	entry, err := q.InsertPlanEntry(ctx, InsertPlanEntryParams{
		UserID:     "ggaucho@umail.ucsb.edu",
		Quarter:    "Winter",
		Year:       pgtype.Text{String: "2026", Valid: true},
		CourseCode: "GE Area D",
		Units:      pgtype.Float8{Float64: 4, Valid: true},
		Type:       pgtype.Text{String: "GE", Valid: true},
	})
	if err != nil {
		t.Fatal("plan entry with an unknown course code should insert: ", err)
	}
	if !entry.CreatedAt.Valid {
		t.Error("created_at should have been defaulted")
	}
}

func TestPlanLifecycle(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()
	userID := "plan lifecycle test user"
	year := pgtype.Text{String: "2026", Valid: true}

	courses := []InsertPlanEntryParams{
		{UserID: userID, Quarter: "Winter", Year: year, CourseCode: "PSTAT 5A",
			Units: pgtype.Float8{Float64: 5, Valid: true}, Type: pgtype.Text{String: "Major prep", Valid: true}},
		{UserID: userID, Quarter: "Winter", Year: year, CourseCode: "PSTAT 120A",
			Units: pgtype.Float8{Float64: 4, Valid: true}, Type: pgtype.Text{String: "Major", Valid: true}},
		{UserID: userID, Quarter: "Winter", Year: year, CourseCode: "GE Area D",
			Units: pgtype.Float8{Float64: 4, Valid: true}, Type: pgtype.Text{String: "GE", Valid: true}},
	}
	var first UserPlan
	for i, arg := range courses {
		entry, err := q.InsertPlanEntry(ctx, arg)
		if err != nil {
			t.Fatal("could not insert plan entry: ", err)
		}
		if i == 0 {
			first = entry
		}
	}

	units, err := q.PlannedUnits(ctx, PlannedUnitsParams{UserID: userID, Quarter: "Winter", Year: year})
	if err != nil {
		t.Fatal("could not sum units: ", err)
	}
	if units != 13 {
		t.Errorf("expected 13 planned units, got %g", units)
	}

	err = q.UpdatePlanEntry(ctx, UpdatePlanEntryParams{
		ID:    first.ID,
		Units: pgtype.Float8{Float64: 2.5, Valid: true},
		Type:  first.Type,
	})
	if err != nil {
		t.Fatal("could not update plan entry: ", err)
	}
	updated, err := q.GetPlanEntry(ctx, first.ID)
	if err != nil {
		t.Fatal("could not get plan entry: ", err)
	}
	if updated.Units.Float64 != 2.5 {
		t.Errorf("units were not updated, got %g", updated.Units.Float64)
	}

	entries, err := q.ListPlanEntries(ctx, ListPlanEntriesParams{UserID: userID, Quarter: "Winter", Year: year})
	if err != nil {
		t.Fatal("could not list plan entries: ", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if err := q.DeletePlanEntry(ctx, first.ID); err != nil {
		t.Fatal("could not delete plan entry: ", err)
	}
	removed, err := q.DeletePlan(ctx, DeletePlanParams{UserID: userID, Quarter: "Winter", Year: year})
	if err != nil {
		t.Fatal("could not clear the plan: ", err)
	}
	if removed != 2 {
		t.Errorf("expected to clear the 2 remaining entries, cleared %d", removed)
	}
}

func TestPlanEntriesKeepTermsApart(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()
	userID := "plan term test user"

	terms := []struct {
		quarter string
		year    pgtype.Text
	}{
		{"Winter", pgtype.Text{String: "2026", Valid: true}},
		{"Fall", pgtype.Text{String: "2026", Valid: true}},
		{"Winter", pgtype.Text{}},
	}
	for _, term := range terms {
		_, err := q.InsertPlanEntry(ctx, InsertPlanEntryParams{
			UserID:     userID,
			Quarter:    term.quarter,
			Year:       term.year,
			CourseCode: "PSTAT 10",
		})
		if err != nil {
			t.Fatal("could not insert plan entry: ", err)
		}
	}

	for _, term := range terms {
		entries, err := q.ListPlanEntries(ctx, ListPlanEntriesParams{
			UserID:  userID,
			Quarter: term.quarter,
			Year:    term.year,
		})
		if err != nil {
			t.Fatal("could not list plan entries: ", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected 1 entry for %s %q, got %d", term.quarter, term.year.String, len(entries))
		}
	}
}
