// Package storage is the SQLite persistence collaborator: it owns the
// records, while the rest of the module works on snapshots it returns.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"earntime/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InsertSession stores a newly finalized earned session.
func (r *SQLiteRepository) InsertSession(ctx context.Context, s core.EarnedSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO task_sessions
			(id, category, custom_label, start_date, end_date, duration_seconds, earned_minutes, notes, is_archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, string(s.Category), s.CustomLabel,
		s.StartDate.Unix(), s.EndDate.Unix(),
		s.DurationSeconds, s.EarnedMinutes, s.Notes, boolToInt(s.IsArchived),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	slog.InfoContext(ctx, "Session saved",
		"id", s.ID,
		"category", string(s.Category),
		"earned_minutes", s.EarnedMinutes)

	return nil
}

// InsertSpendLog stores a committed spend.
func (r *SQLiteRepository) InsertSpendLog(ctx context.Context, l core.SpendLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO screen_time_logs
			(id, created_at, minutes_used, source, notes, is_archived)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.CreatedAt.Unix(), l.MinutesUsed, l.Source, l.Notes, boolToInt(l.IsArchived),
	)
	if err != nil {
		return fmt.Errorf("insert spend log: %w", err)
	}

	slog.InfoContext(ctx, "Spend log saved",
		"id", l.ID,
		"minutes_used", l.MinutesUsed,
		"source", l.Source)

	return nil
}

// ListSessions returns sessions sorted by end date ascending. With
// includeArchived false only the working set is returned.
func (r *SQLiteRepository) ListSessions(ctx context.Context, includeArchived bool) ([]core.EarnedSession, error) {
	query := `
		SELECT id, category, custom_label, start_date, end_date, duration_seconds, earned_minutes, notes, is_archived
		FROM task_sessions`
	if !includeArchived {
		query += ` WHERE is_archived = 0`
	}
	query += ` ORDER BY end_date ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []core.EarnedSession
	for rows.Next() {
		var (
			s                  core.EarnedSession
			category           string
			startUnix, endUnix int64
			archived           int
		)
		if err := rows.Scan(&s.ID, &category, &s.CustomLabel, &startUnix, &endUnix,
			&s.DurationSeconds, &s.EarnedMinutes, &s.Notes, &archived); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Category = core.ParseCategory(category)
		s.StartDate = time.Unix(startUnix, 0)
		s.EndDate = time.Unix(endUnix, 0)
		s.IsArchived = archived != 0
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// ListSpendLogs returns spend logs sorted by creation time ascending.
func (r *SQLiteRepository) ListSpendLogs(ctx context.Context, includeArchived bool) ([]core.SpendLog, error) {
	query := `
		SELECT id, created_at, minutes_used, source, notes, is_archived
		FROM screen_time_logs`
	if !includeArchived {
		query += ` WHERE is_archived = 0`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query spend logs: %w", err)
	}
	defer rows.Close()

	var logs []core.SpendLog
	for rows.Next() {
		var (
			l           core.SpendLog
			createdUnix int64
			archived    int
		)
		if err := rows.Scan(&l.ID, &createdUnix, &l.MinutesUsed, &l.Source, &l.Notes, &archived); err != nil {
			return nil, fmt.Errorf("scan spend log: %w", err)
		}
		l.CreatedAt = time.Unix(createdUnix, 0)
		l.IsArchived = archived != 0
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spend logs: %w", err)
	}

	return logs, nil
}

// ArchiveRecords flips is_archived for every listed record inside a single
// transaction. Either every record is archived or none are.
func (r *SQLiteRepository) ArchiveRecords(ctx context.Context, sessionIDs, logIDs []string) error {
	if len(sessionIDs) == 0 && len(logIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range sessionIDs {
		if err := archiveOne(ctx, tx, "task_sessions", id); err != nil {
			return err
		}
	}
	for _, id := range logIDs {
		if err := archiveOne(ctx, tx, "screen_time_logs", id); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive transaction: %w", err)
	}

	slog.InfoContext(ctx, "Records archived",
		"sessions", len(sessionIDs),
		"spend_logs", len(logIDs))

	return nil
}

func archiveOne(ctx context.Context, tx *sql.Tx, table, id string) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE `+table+` SET is_archived = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("archive %s %s: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive %s %s: rows affected: %w", table, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("archive %s %s: record not found", table, id)
	}
	return nil
}

// ArchiveSession soft-deletes a single session.
func (r *SQLiteRepository) ArchiveSession(ctx context.Context, id string) error {
	return r.ArchiveRecords(ctx, []string{id}, nil)
}

// ArchiveSpendLog soft-deletes a single spend log.
func (r *SQLiteRepository) ArchiveSpendLog(ctx context.Context, id string) error {
	return r.ArchiveRecords(ctx, nil, []string{id})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
