package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	timeLayout = time.RFC3339Nano
	dateLayout = "2006-01-02"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("history: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateRun(ctx context.Context, in Run) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (id, plan_date, work_location, block_count, meeting_minutes, task_minutes,
			protected_minutes, deep_work_minutes, north_star_alignment, balance_score,
			reschedule_candidates, recipient, generated_at, sent_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, planDate(in.PlanDate), in.WorkLocation, in.BlockCount, in.MeetingMinutes, in.TaskMinutes,
		in.ProtectedMinutes, in.DeepWorkMinutes, in.NorthStarAlignment, in.BalanceScore,
		in.RescheduleCandidates, in.Recipient, mustTime(in.GeneratedAt), nullTime(in.SentAt),
	)
	return err
}

func (r *SQLiteRepository) GetRun(ctx context.Context, id string) (Run, error) {
	row := r.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, err
	}
	return run, nil
}

func (r *SQLiteRepository) ListRuns(ctx context.Context, filter RunListFilter) ([]Run, error) {
	query := selectRuns
	args := make([]any, 0, 3)
	where := ""
	if filter.PlanDate != nil {
		where = ` WHERE plan_date = ?`
		args = append(args, planDate(*filter.PlanDate))
	}
	if filter.SentOnly {
		if where == "" {
			where = ` WHERE sent_at IS NOT NULL`
		} else {
			where += ` AND sent_at IS NOT NULL`
		}
	}
	query += where + ` ORDER BY generated_at DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0)
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE runs SET sent_at = ? WHERE id = ?`, mustTime(at), id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) SentForDate(ctx context.Context, date time.Time) (bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM runs WHERE plan_date = ? AND sent_at IS NOT NULL`, planDate(date))
	var n int
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

const selectRuns = `
	SELECT id, plan_date, work_location, block_count, meeting_minutes, task_minutes,
		protected_minutes, deep_work_minutes, north_star_alignment, balance_score,
		reschedule_candidates, recipient, generated_at, sent_at
	FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var out Run
	var plan, generated string
	var sent sql.NullString
	if err := s.Scan(&out.ID, &plan, &out.WorkLocation, &out.BlockCount, &out.MeetingMinutes,
		&out.TaskMinutes, &out.ProtectedMinutes, &out.DeepWorkMinutes, &out.NorthStarAlignment,
		&out.BalanceScore, &out.RescheduleCandidates, &out.Recipient, &generated, &sent); err != nil {
		return Run{}, err
	}
	date, err := time.Parse(dateLayout, plan)
	if err != nil {
		return Run{}, err
	}
	generatedAt, err := time.Parse(timeLayout, generated)
	if err != nil {
		return Run{}, err
	}
	sentAt, err := parseNullableTime(sent)
	if err != nil {
		return Run{}, err
	}
	out.PlanDate = date.UTC()
	out.GeneratedAt = generatedAt
	out.SentAt = sentAt
	return out, nil
}

func planDate(v time.Time) string {
	return v.UTC().Format(dateLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(timeLayout)
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(timeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(timeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
