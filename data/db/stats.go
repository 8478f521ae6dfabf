package db

import (
	"context"
)

const countOfferings = `
SELECT count(*) FROM offerings
`

func (q *Queries) CountOfferings(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countOfferings)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countPlanEntries = `
SELECT count(*) FROM user_plans
`

func (q *Queries) CountPlanEntries(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countPlanEntries)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const coursesPerMajor = `
SELECT major, count(*)
FROM courses
GROUP BY major
ORDER BY major
`

type CoursesPerMajorRow struct {
	Major string `json:"major"`
	Count int64  `json:"count"`
}

func (q *Queries) CoursesPerMajor(ctx context.Context) ([]CoursesPerMajorRow, error) {
	rows, err := q.db.Query(ctx, coursesPerMajor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CoursesPerMajorRow
	for rows.Next() {
		var i CoursesPerMajorRow
		if err := rows.Scan(&i.Major, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
