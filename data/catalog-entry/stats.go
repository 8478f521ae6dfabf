package catalogentry

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gaucho-tools/gauchoplan/data/db"
)

// Stats is the summary the stats command prints
type Stats struct {
	TotalCourses    int64
	TotalOfferings  int64
	TotalPlanRows   int64
	CoursesPerMajor []db.CoursesPerMajorRow
}

func (c *CatalogQueries) CatalogStats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.TotalCourses, err = c.q.CountCourses(ctx); err != nil {
		return stats, err
	}
	if stats.TotalOfferings, err = c.q.CountOfferings(ctx); err != nil {
		return stats, err
	}
	if stats.TotalPlanRows, err = c.q.CountPlanEntries(ctx); err != nil {
		return stats, err
	}
	if stats.CoursesPerMajor, err = c.q.CoursesPerMajor(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
