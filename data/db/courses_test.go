package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestCourseCodeUniquePerMajor(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()

	_, err := q.InsertCourse(ctx, InsertCourseParams{
		Major:      "unique test major",
		CourseCode: "PSTAT 120A",
		Title:      "PROB & STATISTICS",
		Units:      pgtype.Text{String: "4.0", Valid: true},
	})
	if err != nil {
		t.Fatal("could not insert course: ", err)
	}

	_, err = q.InsertCourse(ctx, InsertCourseParams{
		Major:      "unique test major",
		CourseCode: "PSTAT 120A",
		Title:      "PROB & STATISTICS AGAIN",
	})
	if err == nil {
		t.Fatal("expected the duplicate (major, course_code) insert to fail")
	}
	if !IsUniqueViolation(err) {
		t.Error("expected a unique violation, got: ", err)
	}

	// same code under a different major is a different course
	_, err = q.InsertCourse(ctx, InsertCourseParams{
		Major:      "unique test other major",
		CourseCode: "PSTAT 120A",
		Title:      "PROB & STATISTICS",
	})
	if err != nil {
		t.Error("same code under another major should insert: ", err)
	}
}

func TestUpsertCourseUpdatesInPlace(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()

	first, err := q.UpsertCourse(ctx, UpsertCourseParams{
		Major:      "upsert test major",
		CourseCode: "PSTAT 120B",
		Title:      "old title",
		Level:      pgtype.Text{String: "Upper", Valid: true},
	})
	if err != nil {
		t.Fatal("could not upsert course: ", err)
	}

	second, err := q.UpsertCourse(ctx, UpsertCourseParams{
		Major:      "upsert test major",
		CourseCode: "PSTAT 120B",
		Title:      "new title",
		Units:      pgtype.Text{String: "4.0", Valid: true},
	})
	if err != nil {
		t.Fatal("could not upsert course again: ", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert created a new row: %d vs %d", first.ID, second.ID)
	}
	if second.Title != "new title" {
		t.Errorf("title was not updated, got %q", second.Title)
	}
	if second.Level.Valid {
		t.Error("level should have been overwritten with null")
	}

	courses, err := q.ListCoursesByMajor(ctx, "upsert test major")
	if err != nil {
		t.Fatal("could not list courses: ", err)
	}
	if len(courses) != 1 {
		t.Errorf("expected exactly one course for the major, got %d", len(courses))
	}
}

func TestListMajorsIsDistinctAndSorted(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()

	// two courses in one major, one in another
	seed := []InsertCourseParams{
		{Major: "majors test zoology", CourseCode: "ZOO 1", Title: "one"},
		{Major: "majors test zoology", CourseCode: "ZOO 2", Title: "two"},
		{Major: "majors test anthropology", CourseCode: "ANTH 1", Title: "three"},
	}
	for _, arg := range seed {
		if _, err := q.InsertCourse(ctx, arg); err != nil {
			t.Fatal("could not insert course: ", err)
		}
	}

	majors, err := q.ListMajors(ctx)
	if err != nil {
		t.Fatal("could not list majors: ", err)
	}
	seen := map[string]int{}
	for _, major := range majors {
		seen[major]++
	}
	if seen["majors test zoology"] != 1 {
		t.Errorf("expected the major once, saw it %d times", seen["majors test zoology"])
	}
	if seen["majors test anthropology"] != 1 {
		t.Errorf("expected the major once, saw it %d times", seen["majors test anthropology"])
	}
	for i := 1; i < len(majors); i++ {
		if majors[i-1] > majors[i] {
			t.Fatal("majors are not sorted")
		}
	}
}

func TestDeleteCourseCascadesToOfferings(t *testing.T) {
	q := testQueries(t)
	ctx := context.Background()

	course, err := q.InsertCourse(ctx, InsertCourseParams{
		Major:      "cascade test major",
		CourseCode: "PSTAT 160A",
		Title:      "STOCHASTIC PROCESSES",
	})
	if err != nil {
		t.Fatal("could not insert course: ", err)
	}
	for i := 0; i < 2; i++ {
		_, err = q.InsertOffering(ctx, InsertOfferingParams{
			CourseID: course.ID,
			Quarter:  "Fall",
			Year:     pgtype.Text{String: "2025", Valid: true},
		})
		if err != nil {
			t.Fatal("could not insert offering: ", err)
		}
	}

	if err := q.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatal("could not delete course: ", err)
	}

	offerings, err := q.ListOfferingsForCourse(ctx, course.ID)
	if err != nil {
		t.Fatal("could not list offerings: ", err)
	}
	if len(offerings) != 0 {
		t.Errorf("expected the cascade to remove offerings, found %d", len(offerings))
	}

	_, err = q.GetCourse(ctx, course.ID)
	if !IsNotFound(err) {
		t.Error("expected the course to be gone, got: ", err)
	}
}
