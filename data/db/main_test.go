package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gaucho-tools/gauchoplan/data"
	"github.com/gaucho-tools/gauchoplan/data/testdb"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	if os.Getenv("TEST_DB_CONN") != "" {
		if err := testdb.SetupTestDb(); err != nil {
			fmt.Println("could not set up the test database: ", err)
			os.Exit(1)
		}
		pool, err := data.NewPool(context.Background())
		if err != nil {
			fmt.Println("could not connect to the test database: ", err)
			os.Exit(1)
		}
		testPool = pool
	}
	os.Exit(m.Run())
}

// testQueries skips the test when no test database is configured
func testQueries(t *testing.T) *Queries {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DB_CONN not set")
	}
	return New(testPool)
}
