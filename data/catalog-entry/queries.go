package catalogentry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/gaucho-tools/gauchoplan/data/db"
)

// catalog maintenance is the only place that writes courses and offerings
//   so the rest of the project can treat the catalog as read only
// plan entries are deliberately NOT here: user_plans has no referential tie
//   to the catalog and is written straight through db.Queries

func NewCatalogQuery(pool *pgxpool.Pool) *CatalogQueries {
	return &CatalogQueries{pool: pool, q: db.New(pool)}
}

type CatalogQueries struct {
	pool *pgxpool.Pool
	q    *db.Queries
}

func (c *CatalogQueries) WithTx(tx pgx.Tx) *CatalogQueries {
	return &CatalogQueries{
		pool: c.pool,
		q:    c.q.WithTx(tx),
	}
}

// ImportCourses upserts a batch of catalog rows, creating an offering for
// any row that carries term information
func (c *CatalogQueries) ImportCourses(logger *log.Entry, ctx context.Context, entries []CourseEntry) error {
	batchID := uuid.NewString()
	logger = logger.WithFields(log.Fields{
		"batch":   batchID,
		"entries": len(entries),
	})

	imported := 0
	for _, entry := range entries {
		course, err := c.q.UpsertCourse(ctx, db.UpsertCourseParams{
			Major:          entry.Major,
			CourseCode:     entry.CourseCode,
			Title:          entry.Title,
			Units:          entry.Units,
			Level:          entry.Level,
			Description:    entry.Description,
			Prerequisites:  entry.Prerequisites,
			AdditionalInfo: entry.AdditionalInfo,
			CatalogUrl:     entry.CatalogUrl,
		})
		if err != nil {
			logger.Error("Upserting course error ", err)
			return fmt.Errorf("error upserting course %s %s: %w", entry.Major, entry.CourseCode, err)
		}

		if entry.Quarter.Valid {
			_, err = c.q.InsertOffering(ctx, db.InsertOfferingParams{
				CourseID:        course.ID,
				Quarter:         entry.Quarter.String,
				Year:            entry.Year,
				Status:          entry.Status,
				Notes:           entry.Notes,
				InstructorName:  entry.InstructorName,
				InstructorEmail: entry.InstructorEmail,
				MeetingPattern:  entry.MeetingPattern,
			})
			if err != nil {
				logger.Error("Inserting offering error ", err)
				return fmt.Errorf("error inserting offering for %s: %w", entry.CourseCode, err)
			}
		}
		imported++
	}

	logger.Infof("Imported %d catalog entries", imported)
	return nil
}

// ReplaceTermOfferings wipes a major's (quarter, year) slice of offerings
// and reloads it in one transaction. Rows whose course code is not in the
// catalog are skipped with a warning rather than failing the batch.
func (c *CatalogQueries) ReplaceTermOfferings(
	logger *log.Entry,
	ctx context.Context,
	major string,
	quarter string,
	year string,
	offerings []TermOffering,
) error {
	batchID := uuid.NewString()
	logger = logger.WithFields(log.Fields{
		"batch":   batchID,
		"major":   major,
		"quarter": quarter,
		"year":    year,
	})

	yearText := textOrNull(year)

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting offerings transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	q := c.q.WithTx(tx)

	rows := make([]db.BulkInsertOfferingsParams, 0, len(offerings))
	for _, offering := range offerings {
		course, err := q.GetCourseByCode(ctx, db.GetCourseByCodeParams{
			Major:      major,
			CourseCode: offering.CourseCode,
		})
		if err != nil {
			if db.IsNotFound(err) {
				logger.Warnf("Skipping offering for unknown course %s", offering.CourseCode)
				continue
			}
			return fmt.Errorf("error resolving course %s: %w", offering.CourseCode, err)
		}
		rows = append(rows, db.BulkInsertOfferingsParams{
			CourseID:        course.ID,
			Quarter:         quarter,
			Year:            yearText,
			Status:          offering.Status,
			Notes:           offering.Notes,
			InstructorName:  offering.InstructorName,
			InstructorEmail: offering.InstructorEmail,
			MeetingPattern:  offering.MeetingPattern,
		})
	}

	deleted, err := q.DeleteTermOfferings(ctx, db.DeleteTermOfferingsParams{
		Major:   major,
		Quarter: quarter,
		Year:    yearText,
	})
	if err != nil {
		return fmt.Errorf("error deleting term offerings: %w", err)
	}

	inserted, err := q.BulkInsertOfferings(ctx, rows)
	if err != nil {
		return fmt.Errorf("error bulk inserting offerings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing offerings transaction: %w", err)
	}

	logger.Infof("Replaced %d offerings with %d", deleted, inserted)
	return nil
}
