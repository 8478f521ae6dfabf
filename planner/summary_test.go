package planner

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gaucho-tools/gauchoplan/data/db"
)

func TestClassifyLoad(t *testing.T) {
	cases := []struct {
		units float64
		want  Load
	}{
		{0, LoadLight},
		{11.5, LoadLight},
		{12, LoadFull},
		{16, LoadFull},
		{16.5, LoadHeavy},
		{21, LoadHeavy},
	}
	for _, c := range cases {
		if got := ClassifyLoad(c.units); got != c.want {
			t.Errorf("ClassifyLoad(%g) = %q, want %q", c.units, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	entries := []db.UserPlan{
		{CourseCode: "PSTAT 5A", Units: pgtype.Float8{Float64: 5, Valid: true},
			Type: pgtype.Text{String: "Major prep", Valid: true}},
		{CourseCode: "PSTAT 120A", Units: pgtype.Float8{Float64: 4, Valid: true},
			Type: pgtype.Text{String: "Major", Valid: true}},
		{CourseCode: "GE Area D", Units: pgtype.Float8{Float64: 4, Valid: true},
			Type: pgtype.Text{String: "GE", Valid: true}},
		{CourseCode: "INT 1", Units: pgtype.Float8{}},
	}

	summary := Summarize(entries)
	if summary.Entries != 4 {
		t.Errorf("Entries = %d, want 4", summary.Entries)
	}
	if summary.TotalUnits != 13 {
		t.Errorf("TotalUnits = %g, want 13", summary.TotalUnits)
	}
	if summary.Load != LoadFull {
		t.Errorf("Load = %q, want full", summary.Load)
	}
	if summary.UnitsByType["Major prep"] != 5 {
		t.Errorf("Major prep units = %g, want 5", summary.UnitsByType["Major prep"])
	}
	// the unitless, untyped entry still shows up in the breakdown
	if _, ok := summary.UnitsByType[UntypedKey]; !ok {
		t.Error("untyped entry missing from the breakdown")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalUnits != 0 || summary.Entries != 0 {
		t.Errorf("empty plan should be zeroed: %+v", summary)
	}
	if summary.Load != LoadLight {
		t.Errorf("empty plan load = %q, want light", summary.Load)
	}
}
