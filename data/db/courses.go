package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertCourse = `
INSERT INTO courses (major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url, created_at
`

type InsertCourseParams struct {
	Major          string      `json:"major"`
	CourseCode     string      `json:"course_code"`
	Title          string      `json:"title"`
	Units          pgtype.Text `json:"units"`
	Level          pgtype.Text `json:"level"`
	Description    pgtype.Text `json:"description"`
	Prerequisites  pgtype.Text `json:"prerequisites"`
	AdditionalInfo pgtype.Text `json:"additional_info"`
	CatalogUrl     pgtype.Text `json:"catalog_url"`
}

// InsertCourse fails with a unique violation if (major, course_code) is
// already in the catalog
func (q *Queries) InsertCourse(ctx context.Context, arg InsertCourseParams) (Course, error) {
	row := q.db.QueryRow(ctx, insertCourse,
		arg.Major,
		arg.CourseCode,
		arg.Title,
		arg.Units,
		arg.Level,
		arg.Description,
		arg.Prerequisites,
		arg.AdditionalInfo,
		arg.CatalogUrl,
	)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Major,
		&i.CourseCode,
		&i.Title,
		&i.Units,
		&i.Level,
		&i.Description,
		&i.Prerequisites,
		&i.AdditionalInfo,
		&i.CatalogUrl,
		&i.CreatedAt,
	)
	return i, err
}

const upsertCourse = `
INSERT INTO courses (major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (major, course_code) DO UPDATE SET
    title = EXCLUDED.title,
    units = EXCLUDED.units,
    level = EXCLUDED.level,
    description = EXCLUDED.description,
    prerequisites = EXCLUDED.prerequisites,
    additional_info = EXCLUDED.additional_info,
    catalog_url = EXCLUDED.catalog_url
RETURNING id, major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url, created_at
`

type UpsertCourseParams struct {
	Major          string      `json:"major"`
	CourseCode     string      `json:"course_code"`
	Title          string      `json:"title"`
	Units          pgtype.Text `json:"units"`
	Level          pgtype.Text `json:"level"`
	Description    pgtype.Text `json:"description"`
	Prerequisites  pgtype.Text `json:"prerequisites"`
	AdditionalInfo pgtype.Text `json:"additional_info"`
	CatalogUrl     pgtype.Text `json:"catalog_url"`
}

func (q *Queries) UpsertCourse(ctx context.Context, arg UpsertCourseParams) (Course, error) {
	row := q.db.QueryRow(ctx, upsertCourse,
		arg.Major,
		arg.CourseCode,
		arg.Title,
		arg.Units,
		arg.Level,
		arg.Description,
		arg.Prerequisites,
		arg.AdditionalInfo,
		arg.CatalogUrl,
	)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Major,
		&i.CourseCode,
		&i.Title,
		&i.Units,
		&i.Level,
		&i.Description,
		&i.Prerequisites,
		&i.AdditionalInfo,
		&i.CatalogUrl,
		&i.CreatedAt,
	)
	return i, err
}

const getCourse = `
SELECT id, major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url, created_at
FROM courses
WHERE id = $1
`

func (q *Queries) GetCourse(ctx context.Context, id int64) (Course, error) {
	row := q.db.QueryRow(ctx, getCourse, id)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Major,
		&i.CourseCode,
		&i.Title,
		&i.Units,
		&i.Level,
		&i.Description,
		&i.Prerequisites,
		&i.AdditionalInfo,
		&i.CatalogUrl,
		&i.CreatedAt,
	)
	return i, err
}

const getCourseByCode = `
SELECT id, major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url, created_at
FROM courses
WHERE major = $1 AND course_code = $2
`

type GetCourseByCodeParams struct {
	Major      string `json:"major"`
	CourseCode string `json:"course_code"`
}

func (q *Queries) GetCourseByCode(ctx context.Context, arg GetCourseByCodeParams) (Course, error) {
	row := q.db.QueryRow(ctx, getCourseByCode, arg.Major, arg.CourseCode)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Major,
		&i.CourseCode,
		&i.Title,
		&i.Units,
		&i.Level,
		&i.Description,
		&i.Prerequisites,
		&i.AdditionalInfo,
		&i.CatalogUrl,
		&i.CreatedAt,
	)
	return i, err
}

const listCoursesByMajor = `
SELECT id, major, course_code, title, units, level, description, prerequisites, additional_info, catalog_url, created_at
FROM courses
WHERE major = $1
ORDER BY course_code
`

func (q *Queries) ListCoursesByMajor(ctx context.Context, major string) ([]Course, error) {
	rows, err := q.db.Query(ctx, listCoursesByMajor, major)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		var i Course
		if err := rows.Scan(
			&i.ID,
			&i.Major,
			&i.CourseCode,
			&i.Title,
			&i.Units,
			&i.Level,
			&i.Description,
			&i.Prerequisites,
			&i.AdditionalInfo,
			&i.CatalogUrl,
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

const listMajors = `
SELECT DISTINCT major FROM courses ORDER BY major
`

func (q *Queries) ListMajors(ctx context.Context) ([]string, error) {
	rows, err := q.db.Query(ctx, listMajors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var major string
		if err := rows.Scan(&major); err != nil {
			return nil, err
		}
		items = append(items, major)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteCourse = `
DELETE FROM courses WHERE id = $1
`

// DeleteCourse also removes every offering of the course through the
// cascading foreign key
func (q *Queries) DeleteCourse(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCourse, id)
	return err
}

const countCourses = `
SELECT count(*) FROM courses
`

func (q *Queries) CountCourses(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countCourses)
	var count int64
	err := row.Scan(&count)
	return count, err
}
