package steps

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isteps/burnout-risk/pkg/models/store"
	"github.com/isteps/burnout-risk/pkg/store/duckdb"
)

// Store persists step records per user. Add joins the transaction carried by
// the context when there is one.
type Store interface {
	Add(ctx context.Context, userID string, records []store.StepRecord) error
	// List returns records with start <= recorded_at < end, oldest first.
	// A zero start or end leaves that side unbounded.
	List(ctx context.Context, userID string, start, end time.Time) ([]store.StepRecord, error)
	Stats(ctx context.Context, userID string) (*store.RecordStats, error)
	ListUsers(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, userID string) (int64, error)
}

type stepStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &stepStore{db: db}, nil
}

func (s *stepStore) Add(ctx context.Context, userID string, records []store.StepRecord) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO step_records (id, user_id, recorded_at, count, source)
		VALUES (?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		stmt, err = tx.PrepareContext(ctx, query)
	} else {
		stmt, err = s.db.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		id := record.ID
		if id == "" {
			id = uuid.NewString()
		}

		_, err = stmt.ExecContext(ctx,
			id,
			userID,
			record.RecordedAt.UTC(),
			record.Count,
			record.Source,
		)
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return nil
}

func (s *stepStore) List(ctx context.Context, userID string, start, end time.Time) ([]store.StepRecord, error) {
	conditions := []string{"user_id = ?"}
	args := []interface{}{userID}
	if !start.IsZero() {
		conditions = append(conditions, "recorded_at >= ?")
		args = append(args, start.UTC())
	}
	if !end.IsZero() {
		conditions = append(conditions, "recorded_at < ?")
		args = append(args, end.UTC())
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, recorded_at, count, source, created_at
		FROM step_records
		WHERE %s
		ORDER BY recorded_at ASC, id ASC`, strings.Join(conditions, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query step records: %w", err)
	}
	defer rows.Close()

	return scanStepRows(rows)
}

func (s *stepStore) Stats(ctx context.Context, userID string) (*store.RecordStats, error) {
	query := `
		SELECT COUNT(*), MIN(recorded_at), MAX(recorded_at)
		FROM step_records
		WHERE user_id = ?`

	var total int64
	var first, last sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&total, &first, &last); err != nil {
		return nil, fmt.Errorf("get record stats: %w", err)
	}

	stats := &store.RecordStats{RecordsCount: total}
	if first.Valid {
		t := first.Time
		stats.FirstRecordTime = &t
	}
	if last.Valid {
		t := last.Time
		stats.LastRecordTime = &t
	}
	return stats, nil
}

func (s *stepStore) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM step_records ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]string, 0)
	for rows.Next() {
		var user string
		if err := rows.Scan(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *stepStore) Delete(ctx context.Context, userID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM step_records WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete step records: %w", err)
	}
	return res.RowsAffected()
}

func scanStepRows(rows *sql.Rows) ([]store.StepRecord, error) {
	records := make([]store.StepRecord, 0)
	for rows.Next() {
		var (
			record store.StepRecord
			source sql.NullString
		)
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.RecordedAt,
			&record.Count,
			&source,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		record.Source = source.String
		records = append(records, record)
	}
	return records, rows.Err()
}
