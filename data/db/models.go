package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Course is one catalog entry per (major, course_code) independent of term
type Course struct {
	ID             int64              `json:"id"`
	Major          string             `json:"major"`
	CourseCode     string             `json:"course_code"`
	Title          string             `json:"title"`
	Units          pgtype.Text        `json:"units"`
	Level          pgtype.Text        `json:"level"`
	Description    pgtype.Text        `json:"description"`
	Prerequisites  pgtype.Text        `json:"prerequisites"`
	AdditionalInfo pgtype.Text        `json:"additional_info"`
	CatalogUrl     pgtype.Text        `json:"catalog_url"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

// Offering is one scheduled instance of a course in a quarter/year,
// deleted with its course
type Offering struct {
	ID              int64              `json:"id"`
	CourseID        int64              `json:"course_id"`
	Quarter         string             `json:"quarter"`
	Year            pgtype.Text        `json:"year"`
	Status          pgtype.Text        `json:"status"`
	Notes           pgtype.Text        `json:"notes"`
	InstructorName  pgtype.Text        `json:"instructor_name"`
	InstructorEmail pgtype.Text        `json:"instructor_email"`
	MeetingPattern  pgtype.Text        `json:"meeting_pattern"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
}

// UserPlan is one course a user penciled into a quarter. The course code is
// a plain string copy with no tie to the courses table and the user id is
// whatever SSO string the caller supplies
type UserPlan struct {
	ID         int64              `json:"id"`
	UserID     string             `json:"user_id"`
	Quarter    string             `json:"quarter"`
	Year       pgtype.Text        `json:"year"`
	CourseCode string             `json:"course_code"`
	Units      pgtype.Float8      `json:"units"`
	Type       pgtype.Text        `json:"type"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
