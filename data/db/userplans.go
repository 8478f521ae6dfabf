package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// user_plans is intentionally free floating: course_code is a string copy
// with no foreign key and user_id is an opaque SSO string, so none of these
// queries touch the courses table

const insertPlanEntry = `
INSERT INTO user_plans (user_id, quarter, year, course_code, units, type)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, quarter, year, course_code, units, type, created_at
`

type InsertPlanEntryParams struct {
	UserID     string        `json:"user_id"`
	Quarter    string        `json:"quarter"`
	Year       pgtype.Text   `json:"year"`
	CourseCode string        `json:"course_code"`
	Units      pgtype.Float8 `json:"units"`
	Type       pgtype.Text   `json:"type"`
}

func (q *Queries) InsertPlanEntry(ctx context.Context, arg InsertPlanEntryParams) (UserPlan, error) {
	row := q.db.QueryRow(ctx, insertPlanEntry,
		arg.UserID,
		arg.Quarter,
		arg.Year,
		arg.CourseCode,
		arg.Units,
		arg.Type,
	)
	var i UserPlan
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Quarter,
		&i.Year,
		&i.CourseCode,
		&i.Units,
		&i.Type,
		&i.CreatedAt,
	)
	return i, err
}

const getPlanEntry = `
SELECT id, user_id, quarter, year, course_code, units, type, created_at
FROM user_plans
WHERE id = $1
`

func (q *Queries) GetPlanEntry(ctx context.Context, id int64) (UserPlan, error) {
	row := q.db.QueryRow(ctx, getPlanEntry, id)
	var i UserPlan
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Quarter,
		&i.Year,
		&i.CourseCode,
		&i.Units,
		&i.Type,
		&i.CreatedAt,
	)
	return i, err
}

const listPlanEntries = `
SELECT id, user_id, quarter, year, course_code, units, type, created_at
FROM user_plans
WHERE user_id = $1 AND quarter = $2 AND year IS NOT DISTINCT FROM $3
ORDER BY created_at, id
`

type ListPlanEntriesParams struct {
	UserID  string      `json:"user_id"`
	Quarter string      `json:"quarter"`
	Year    pgtype.Text `json:"year"`
}

func (q *Queries) ListPlanEntries(ctx context.Context, arg ListPlanEntriesParams) ([]UserPlan, error) {
	rows, err := q.db.Query(ctx, listPlanEntries, arg.UserID, arg.Quarter, arg.Year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserPlan
	for rows.Next() {
		var i UserPlan
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Quarter,
			&i.Year,
			&i.CourseCode,
			&i.Units,
			&i.Type,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updatePlanEntry = `
UPDATE user_plans SET units = $2, type = $3 WHERE id = $1
`

type UpdatePlanEntryParams struct {
	ID    int64         `json:"id"`
	Units pgtype.Float8 `json:"units"`
	Type  pgtype.Text   `json:"type"`
}

func (q *Queries) UpdatePlanEntry(ctx context.Context, arg UpdatePlanEntryParams) error {
	_, err := q.db.Exec(ctx, updatePlanEntry, arg.ID, arg.Units, arg.Type)
	return err
}

const deletePlanEntry = `
DELETE FROM user_plans WHERE id = $1
`

func (q *Queries) DeletePlanEntry(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deletePlanEntry, id)
	return err
}

const deletePlan = `
DELETE FROM user_plans
WHERE user_id = $1 AND quarter = $2 AND year IS NOT DISTINCT FROM $3
`

type DeletePlanParams struct {
	UserID  string      `json:"user_id"`
	Quarter string      `json:"quarter"`
	Year    pgtype.Text `json:"year"`
}

// DeletePlan clears a user's whole quarter
func (q *Queries) DeletePlan(ctx context.Context, arg DeletePlanParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deletePlan, arg.UserID, arg.Quarter, arg.Year)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const plannedUnits = `
SELECT COALESCE(SUM(units), 0)
FROM user_plans
WHERE user_id = $1 AND quarter = $2 AND year IS NOT DISTINCT FROM $3
`

type PlannedUnitsParams struct {
	UserID  string      `json:"user_id"`
	Quarter string      `json:"quarter"`
	Year    pgtype.Text `json:"year"`
}

func (q *Queries) PlannedUnits(ctx context.Context, arg PlannedUnitsParams) (float64, error) {
	row := q.db.QueryRow(ctx, plannedUnits, arg.UserID, arg.Quarter, arg.Year)
	var units float64
	err := row.Scan(&units)
	return units, err
}
