package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOffering = `
INSERT INTO offerings (course_id, quarter, year, status, notes, instructor_name, instructor_email, meeting_pattern)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, course_id, quarter, year, status, notes, instructor_name, instructor_email, meeting_pattern, created_at
`

type InsertOfferingParams struct {
	CourseID        int64       `json:"course_id"`
	Quarter         string      `json:"quarter"`
	Year            pgtype.Text `json:"year"`
	Status          pgtype.Text `json:"status"`
	Notes           pgtype.Text `json:"notes"`
	InstructorName  pgtype.Text `json:"instructor_name"`
	InstructorEmail pgtype.Text `json:"instructor_email"`
	MeetingPattern  pgtype.Text `json:"meeting_pattern"`
}

func (q *Queries) InsertOffering(ctx context.Context, arg InsertOfferingParams) (Offering, error) {
	row := q.db.QueryRow(ctx, insertOffering,
		arg.CourseID,
		arg.Quarter,
		arg.Year,
		arg.Status,
		arg.Notes,
		arg.InstructorName,
		arg.InstructorEmail,
		arg.MeetingPattern,
	)
	var i Offering
	err := row.Scan(
		&i.ID,
		&i.CourseID,
		&i.Quarter,
		&i.Year,
		&i.Status,
		&i.Notes,
		&i.InstructorName,
		&i.InstructorEmail,
		&i.MeetingPattern,
		&i.CreatedAt,
	)
	return i, err
}

const listOfferingsForCourse = `
SELECT id, course_id, quarter, year, status, notes, instructor_name, instructor_email, meeting_pattern, created_at
FROM offerings
WHERE course_id = $1
ORDER BY year, quarter, id
`

func (q *Queries) ListOfferingsForCourse(ctx context.Context, courseID int64) ([]Offering, error) {
	rows, err := q.db.Query(ctx, listOfferingsForCourse, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Offering
	for rows.Next() {
		var i Offering
		if err := rows.Scan(
			&i.ID,
			&i.CourseID,
			&i.Quarter,
			&i.Year,
			&i.Status,
			&i.Notes,
			&i.InstructorName,
			&i.InstructorEmail,
			&i.MeetingPattern,
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

const getCourseTermOfferings = `
SELECT id, course_id, quarter, year, status, notes, instructor_name, instructor_email, meeting_pattern, created_at
FROM offerings
WHERE course_id = $1 AND year IS NOT DISTINCT FROM $2 AND quarter = $3
ORDER BY id
`

type GetCourseTermOfferingsParams struct {
	CourseID int64       `json:"course_id"`
	Year     pgtype.Text `json:"year"`
	Quarter  string      `json:"quarter"`
}

// GetCourseTermOfferings is the point lookup backed by the
// (course_id, year, quarter) index
func (q *Queries) GetCourseTermOfferings(ctx context.Context, arg GetCourseTermOfferingsParams) ([]Offering, error) {
	rows, err := q.db.Query(ctx, getCourseTermOfferings, arg.CourseID, arg.Year, arg.Quarter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Offering
	for rows.Next() {
		var i Offering
		if err := rows.Scan(
			&i.ID,
			&i.CourseID,
			&i.Quarter,
			&i.Year,
			&i.Status,
			&i.Notes,
			&i.InstructorName,
			&i.InstructorEmail,
			&i.MeetingPattern,
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

const listTermOfferings = `
SELECT c.id, c.major, c.course_code, c.title, c.units, c.level, c.description, c.prerequisites, c.additional_info, c.catalog_url, c.created_at,
       o.id, o.course_id, o.quarter, o.year, o.status, o.notes, o.instructor_name, o.instructor_email, o.meeting_pattern, o.created_at
FROM courses c
JOIN offerings o ON c.id = o.course_id
WHERE c.major = $1 AND o.quarter = $2 AND ($3::text IS NULL OR o.year IS NOT DISTINCT FROM $3)
ORDER BY c.course_code, o.id
`

type ListTermOfferingsParams struct {
	Major   string      `json:"major"`
	Quarter string      `json:"quarter"`
	Year    pgtype.Text `json:"year"`
}

type ListTermOfferingsRow struct {
	Course   Course   `json:"course"`
	Offering Offering `json:"offering"`
}

// ListTermOfferings returns a major's catalog entries joined with their
// offerings for one quarter. A null year matches any year.
func (q *Queries) ListTermOfferings(ctx context.Context, arg ListTermOfferingsParams) ([]ListTermOfferingsRow, error) {
	rows, err := q.db.Query(ctx, listTermOfferings, arg.Major, arg.Quarter, arg.Year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListTermOfferingsRow
	for rows.Next() {
		var i ListTermOfferingsRow
		if err := rows.Scan(
			&i.Course.ID,
			&i.Course.Major,
			&i.Course.CourseCode,
			&i.Course.Title,
			&i.Course.Units,
			&i.Course.Level,
			&i.Course.Description,
			&i.Course.Prerequisites,
			&i.Course.AdditionalInfo,
			&i.Course.CatalogUrl,
			&i.Course.CreatedAt,
			&i.Offering.ID,
			&i.Offering.CourseID,
			&i.Offering.Quarter,
			&i.Offering.Year,
			&i.Offering.Status,
			&i.Offering.Notes,
			&i.Offering.InstructorName,
			&i.Offering.InstructorEmail,
			&i.Offering.MeetingPattern,
			&i.Offering.CreatedAt,
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

const updateOfferingStatus = `
UPDATE offerings SET status = $2, notes = $3 WHERE id = $1
`

type UpdateOfferingStatusParams struct {
	ID     int64       `json:"id"`
	Status pgtype.Text `json:"status"`
	Notes  pgtype.Text `json:"notes"`
}

func (q *Queries) UpdateOfferingStatus(ctx context.Context, arg UpdateOfferingStatusParams) error {
	_, err := q.db.Exec(ctx, updateOfferingStatus, arg.ID, arg.Status, arg.Notes)
	return err
}

const deleteTermOfferings = `
DELETE FROM offerings o
USING courses c
WHERE o.course_id = c.id AND c.major = $1 AND o.quarter = $2 AND o.year IS NOT DISTINCT FROM $3
`

type DeleteTermOfferingsParams struct {
	Major   string      `json:"major"`
	Quarter string      `json:"quarter"`
	Year    pgtype.Text `json:"year"`
}

func (q *Queries) DeleteTermOfferings(ctx context.Context, arg DeleteTermOfferingsParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteTermOfferings, arg.Major, arg.Quarter, arg.Year)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const termStatusCounts = `
SELECT count(*) FILTER (WHERE lower(o.status) = 'open')  AS open_count,
       count(*) FILTER (WHERE lower(o.status) = 'mixed') AS mixed_count,
       count(*) FILTER (WHERE lower(o.status) = 'full')  AS full_count,
       count(*)                                          AS total_count
FROM offerings o
JOIN courses c ON c.id = o.course_id
WHERE c.major = $1 AND o.quarter = $2 AND ($3::text IS NULL OR o.year IS NOT DISTINCT FROM $3)
`

type TermStatusCountsParams struct {
	Major   string      `json:"major"`
	Quarter string      `json:"quarter"`
	Year    pgtype.Text `json:"year"`
}

type TermStatusCountsRow struct {
	Open  int64 `json:"open"`
	Mixed int64 `json:"mixed"`
	Full  int64 `json:"full"`
	Total int64 `json:"total"`
}

func (q *Queries) TermStatusCounts(ctx context.Context, arg TermStatusCountsParams) (TermStatusCountsRow, error) {
	row := q.db.QueryRow(ctx, termStatusCounts, arg.Major, arg.Quarter, arg.Year)
	var i TermStatusCountsRow
	err := row.Scan(&i.Open, &i.Mixed, &i.Full, &i.Total)
	return i, err
}

type BulkInsertOfferingsParams struct {
	CourseID        int64       `json:"course_id"`
	Quarter         string      `json:"quarter"`
	Year            pgtype.Text `json:"year"`
	Status          pgtype.Text `json:"status"`
	Notes           pgtype.Text `json:"notes"`
	InstructorName  pgtype.Text `json:"instructor_name"`
	InstructorEmail pgtype.Text `json:"instructor_email"`
	MeetingPattern  pgtype.Text `json:"meeting_pattern"`
}

func (q *Queries) BulkInsertOfferings(ctx context.Context, arg []BulkInsertOfferingsParams) (int64, error) {
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"offerings"},
		[]string{"course_id", "quarter", "year", "status", "notes", "instructor_name", "instructor_email", "meeting_pattern"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]interface{}, error) {
			return []interface{}{
				arg[i].CourseID,
				arg[i].Quarter,
				arg[i].Year,
				arg[i].Status,
				arg[i].Notes,
				arg[i].InstructorName,
				arg[i].InstructorEmail,
				arg[i].MeetingPattern,
			}, nil
		}),
	)
}
