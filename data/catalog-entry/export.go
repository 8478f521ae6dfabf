package catalogentry

import (
	"github.com/gaucho-tools/gauchoplan/data/db"
	"github.com/jackc/pgx/v5/pgtype"
)

type Course = db.Course
type Offering = db.Offering

// CourseEntry is one catalog row handed to ImportCourses. The term fields
// are optional: when Quarter is set the entry also creates an offering.
type CourseEntry struct {
	Major          string
	CourseCode     string
	Title          string
	Units          pgtype.Text
	Level          pgtype.Text
	Description    pgtype.Text
	Prerequisites  pgtype.Text
	AdditionalInfo pgtype.Text
	CatalogUrl     pgtype.Text

	Quarter         pgtype.Text
	Year            pgtype.Text
	Status          pgtype.Text
	Notes           pgtype.Text
	InstructorName  pgtype.Text
	InstructorEmail pgtype.Text
	MeetingPattern  pgtype.Text
}

// TermOffering is one replacement row for ReplaceTermOfferings, keyed by
// course code within the major being reloaded
type TermOffering struct {
	CourseCode      string
	Status          pgtype.Text
	Notes           pgtype.Text
	InstructorName  pgtype.Text
	InstructorEmail pgtype.Text
	MeetingPattern  pgtype.Text
}
