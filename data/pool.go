package data

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gaucho-tools/gauchoplan/projectpath"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	dbPool *pgxpool.Pool
	pgOnce sync.Once
)

func init() {
	// the .env file is optional when DB_CONN is already exported
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil && !os.IsNotExist(err) {
		panic(fmt.Sprint("Error loading .env file: ", err))
	}
}

// NewPool lazily creates the process wide connection pool from DB_CONN
func NewPool(ctx context.Context) (*pgxpool.Pool, error) {

	connString := os.Getenv("DB_CONN")

	var poolErr error = nil
	pgOnce.Do(func() {

		pgPool, err := pgxpool.New(ctx, connString)
		if err != nil {
			log.Error(fmt.Errorf("unable to create connection pool: %w", err))
			poolErr = err
			return
		}
		dbPool = pgPool
	})
	if poolErr != nil {
		return nil, poolErr
	}
	// the Once already ran and failed, later callers must not get a nil pool
	if dbPool == nil {
		return nil, errors.New("the connection pool was never created")
	}

	return dbPool, nil
}
