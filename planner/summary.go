package planner

import (
	"github.com/gaucho-tools/gauchoplan/data/db"
)

// Load buckets follow the usual advising guidance: many students aim for
// 12-16 units, anything above usually needs approval
type Load string

const (
	LoadLight Load = "light"
	LoadFull  Load = "full"
	LoadHeavy Load = "heavy"
)

func ClassifyLoad(units float64) Load {
	switch {
	case units < 12:
		return LoadLight
	case units <= 16:
		return LoadFull
	default:
		return LoadHeavy
	}
}

// untyped plan entries are grouped under this key
const UntypedKey = "(none)"

// Summary is what the plan list command prints under the entries
type Summary struct {
	Entries     int
	TotalUnits  float64
	UnitsByType map[string]float64
	Load        Load
}

func Summarize(entries []db.UserPlan) Summary {
	summary := Summary{
		Entries:     len(entries),
		UnitsByType: map[string]float64{},
	}
	for _, entry := range entries {
		units := 0.0
		if entry.Units.Valid {
			units = entry.Units.Float64
		}
		summary.TotalUnits += units

		entryType := UntypedKey
		if entry.Type.Valid && entry.Type.String != "" {
			entryType = entry.Type.String
		}
		summary.UnitsByType[entryType] += units
	}
	summary.Load = ClassifyLoad(summary.TotalUnits)
	return summary
}
