package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/emopath/internal/db"
	"github.com/alexanderramin/emopath/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db db.DBTX
}

// NewSQLiteCheckInRepo creates a repo over a *sql.DB or a transaction.
func NewSQLiteCheckInRepo(db db.DBTX) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: db}
}

const checkInColumns = `id, method, stress, overwhelm, anger, sadness, source, goal, created_at`

func (r *SQLiteCheckInRepo) Create(ctx context.Context, c *domain.CheckIn) error {
	var stress, overwhelm, anger, sadness *int
	if c.Ratings != nil {
		stress, overwhelm, anger, sadness = &c.Ratings.Stress, &c.Ratings.Overwhelm, &c.Ratings.Anger, &c.Ratings.Sadness
	}
	createdAt := nowUTC()
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}

	query := `INSERT INTO check_ins (` + checkInColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		string(c.Method),
		nullableIntToValue(stress),
		nullableIntToValue(overwhelm),
		nullableIntToValue(anger),
		nullableIntToValue(sadness),
		c.Source,
		c.Goal,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("inserting check-in: %w", err)
	}

	for i, step := range c.Steps {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO check_in_steps (check_in_id, position, emotion) VALUES (?, ?, ?)`,
			c.ID, i, step)
		if err != nil {
			return fmt.Errorf("inserting check-in step %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteCheckInRepo) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins WHERE id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("loading check-in: %w", err)
	}
	list, err := r.scanCheckIns(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("check-in %s: %w", id, ErrNotFound)
	}
	if err := r.attachSteps(ctx, list); err != nil {
		return nil, err
	}
	return list[0], nil
}

func (r *SQLiteCheckInRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CheckIn, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT ` + checkInColumns + ` FROM check_ins ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent check-ins: %w", err)
	}
	list, err := r.scanCheckIns(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachSteps(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SQLiteCheckInRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM check_ins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting check-in: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("check-in %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanCheckIns reads every row and closes rows.
func (r *SQLiteCheckInRepo) scanCheckIns(rows *sql.Rows) ([]*domain.CheckIn, error) {
	defer rows.Close()

	var list []*domain.CheckIn
	for rows.Next() {
		var c domain.CheckIn
		var method, createdAtStr string
		var stress, overwhelm, anger, sadness sql.NullInt64

		if err := rows.Scan(&c.ID, &method, &stress, &overwhelm, &anger, &sadness, &c.Source, &c.Goal, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning check-in row: %w", err)
		}
		c.Method = domain.CheckInMethod(method)

		if stress.Valid && overwhelm.Valid && anger.Valid && sadness.Valid {
			c.Ratings = &domain.Ratings{
				Stress:    *intPtr(stress),
				Overwhelm: *intPtr(overwhelm),
				Anger:     *intPtr(anger),
				Sadness:   *intPtr(sadness),
			}
		}

		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		c.CreatedAt = createdAt
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return list, nil
}

// attachSteps loads the step names for every entry in one query.
func (r *SQLiteCheckInRepo) attachSteps(ctx context.Context, list []*domain.CheckIn) error {
	if len(list) == 0 {
		return nil
	}
	byID := make(map[string]*domain.CheckIn, len(list))
	args := make([]any, 0, len(list))
	for _, c := range list {
		byID[c.ID] = c
		args = append(args, c.ID)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(list)), ",")
	query := `SELECT check_in_id, emotion FROM check_in_steps
		WHERE check_in_id IN (` + placeholders + `)
		ORDER BY check_in_id, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading check-in steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, emotion string
		if err := rows.Scan(&id, &emotion); err != nil {
			return fmt.Errorf("scanning check-in step: %w", err)
		}
		if c, ok := byID[id]; ok {
			c.Steps = append(c.Steps, emotion)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating check-in steps: %w", err)
	}
	return nil
}
