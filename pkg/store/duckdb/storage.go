package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const StepRecordsSchema = `
	CREATE TABLE IF NOT EXISTS step_records (
		id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		recorded_at TIMESTAMP NOT NULL,
		count BIGINT NOT NULL,
		source VARCHAR,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, id)
	);
`

const StepRecordsIndex = `
	CREATE INDEX IF NOT EXISTS step_records_user_time ON step_records (user_id, recorded_at);
`

var bootQueries = []string{
	StepRecordsSchema,
	StepRecordsIndex,
}

type Settings struct {
	DbPath  string
	Threads int
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	dsn := fmt.Sprintf("%s?threads=%d", settings.DbPath, threads)
	c, err := duckdb.NewConnector(dsn, func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create duckdb connector: %w", err)
	}

	return sql.OpenDB(c), nil
}
