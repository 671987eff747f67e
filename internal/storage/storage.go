package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/WesH0use/Work-Log-Database/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id            TEXT PRIMARY KEY,
	employee_name TEXT NOT NULL,
	task_name     TEXT NOT NULL,
	minutes_spent INTEGER NOT NULL CHECK (minutes_spent >= 0),
	task_date     TEXT NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_task_date ON entries(task_date);
CREATE INDEX IF NOT EXISTS idx_entries_employee ON entries(employee_name);
`

const selectColumns = `SELECT id, employee_name, task_name, minutes_spent, task_date, notes, created_at FROM entries`

// defaultOrder is the fixed ordering for every listing: most recent task date first.
const defaultOrder = ` ORDER BY task_date DESC, created_at DESC, id`

// Store is the SQLite-backed work log.
type Store struct {
	db   *sql.DB
	path string
	log  *zap.Logger
	now  func() time.Time
}

// Open opens the database at path, creating the file and the entries table
// if they do not exist yet.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, persistErr("open", fmt.Errorf("creating directories: %w", err))
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, persistErr("open", err)
	}
	// A single connection keeps every statement on the same SQLite handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, persistErr("open", fmt.Errorf("creating schema: %w", err))
	}

	logger.Info("opened work log", zap.String("path", path))
	return &Store{db: db, path: path, log: logger, now: time.Now}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Create stores a new entry and returns its generated ID. The fields are
// expected to be validated by the caller; Validate is checked again so that no
// malformed row can be written.
func (s *Store) Create(ctx context.Context, f model.Fields) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, employee_name, task_name, minutes_spent, task_date, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, f.EmployeeName, f.TaskName, f.MinutesSpent, f.TaskDate.ISO(), f.Notes, s.now().UnixNano(),
	)
	if err != nil {
		s.log.Error("create failed", zap.Error(err))
		return "", persistErr("create", err)
	}
	s.log.Info("created entry",
		zap.String("id", id),
		zap.String("employee", f.EmployeeName),
		zap.String("date", f.TaskDate.ISO()),
	)
	return id, nil
}

// All returns every entry, most recent task date first.
func (s *Store) All(ctx context.Context) ([]model.Record, error) {
	return s.query(ctx, "all", selectColumns+defaultOrder)
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, persistErr("count", err)
	}
	return n, nil
}

// DistinctValues returns the distinct values of field across all entries.
// Text values are sorted alphabetically, dates newest first and minutes
// ascending. Empty notes are omitted.
func (s *Store) DistinctValues(ctx context.Context, field model.Field) ([]model.Value, error) {
	var q string
	switch field {
	case model.FieldEmployee:
		q = `SELECT DISTINCT employee_name FROM entries ORDER BY employee_name`
	case model.FieldTask:
		q = `SELECT DISTINCT task_name FROM entries ORDER BY task_name`
	case model.FieldNotes:
		q = `SELECT DISTINCT notes FROM entries WHERE notes <> '' ORDER BY notes`
	case model.FieldDate:
		q = `SELECT DISTINCT task_date FROM entries ORDER BY task_date DESC`
	case model.FieldMinutes:
		q = `SELECT DISTINCT minutes_spent FROM entries ORDER BY minutes_spent`
	default:
		return nil, fmt.Errorf("unknown field %s", field)
	}

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, persistErr("distinct values", err)
	}
	defer rows.Close()

	var values []model.Value
	for rows.Next() {
		var v model.Value
		switch field {
		case model.FieldMinutes:
			var m int
			if err := rows.Scan(&m); err != nil {
				return nil, persistErr("distinct values", err)
			}
			v = model.MinutesValue(m)
		case model.FieldDate:
			var raw string
			if err := rows.Scan(&raw); err != nil {
				return nil, persistErr("distinct values", err)
			}
			d, err := model.ParseISODate(raw)
			if err != nil {
				return nil, persistErr("distinct values", fmt.Errorf("corrupt task_date %q: %w", raw, err))
			}
			v = model.DateValue(d)
		default:
			var text string
			if err := rows.Scan(&text); err != nil {
				return nil, persistErr("distinct values", err)
			}
			v = model.TextValue(field, text)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("distinct values", err)
	}
	return values, nil
}

// Filter returns the entries matching v. Free-text fields match by substring
// containment (ASCII case-insensitive) unless v.Exact is set, in which case
// the whole value must be equal. Dates and minutes always match exactly.
func (s *Store) Filter(ctx context.Context, v model.Value) ([]model.Record, error) {
	var (
		where string
		arg   any
	)
	switch v.Field {
	case model.FieldEmployee:
		where, arg = textMatch("employee_name", v)
	case model.FieldTask:
		where, arg = textMatch("task_name", v)
	case model.FieldNotes:
		where, arg = textMatch("notes", v)
	case model.FieldDate:
		where, arg = `task_date = ?`, v.Date.ISO()
	case model.FieldMinutes:
		where, arg = `minutes_spent = ?`, v.Minutes
	default:
		return nil, fmt.Errorf("unknown field %s", v.Field)
	}

	records, err := s.query(ctx, "filter", selectColumns+" WHERE "+where+defaultOrder, arg)
	if err != nil {
		return nil, err
	}
	s.log.Debug("filter",
		zap.Stringer("field", v.Field),
		zap.String("value", v.String()),
		zap.Int("matches", len(records)),
	)
	return records, nil
}

// Search returns the entries whose employee name, task name or notes contain
// term (ASCII case-insensitive).
func (s *Store) Search(ctx context.Context, term string) ([]model.Record, error) {
	p := likePattern(term)
	records, err := s.query(ctx, "search",
		selectColumns+` WHERE employee_name LIKE ? ESCAPE '\' OR task_name LIKE ? ESCAPE '\' OR notes LIKE ? ESCAPE '\'`+defaultOrder,
		p, p, p,
	)
	if err != nil {
		return nil, err
	}
	s.log.Debug("search", zap.String("term", term), zap.Int("matches", len(records)))
	return records, nil
}

// Delete removes the entry with the given ID. Deleting an unknown ID returns
// an error wrapping ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		s.log.Error("delete failed", zap.String("id", id), zap.Error(err))
		return persistErr("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return persistErr("delete", err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	s.log.Info("deleted entry", zap.String("id", id))
	return nil
}

func (s *Store) query(ctx context.Context, op, q string, args ...any) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, persistErr(op, err)
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		var (
			r       model.Record
			rawDate string
			created int64
		)
		if err := rows.Scan(&r.ID, &r.EmployeeName, &r.TaskName, &r.MinutesSpent, &rawDate, &r.Notes, &created); err != nil {
			return nil, persistErr(op, err)
		}
		d, err := model.ParseISODate(rawDate)
		if err != nil {
			return nil, persistErr(op, fmt.Errorf("corrupt task_date %q in entry %s: %w", rawDate, r.ID, err))
		}
		r.TaskDate = d
		r.CreatedAt = time.Unix(0, created).UTC()
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr(op, err)
	}
	return records, nil
}

// textMatch returns the condition and argument matching column against a
// free-text value.
func textMatch(column string, v model.Value) (string, any) {
	if v.Exact {
		return column + ` = ?`, v.Text
	}
	return column + ` LIKE ? ESCAPE '\'`, likePattern(v.Text)
}

// likePattern builds a LIKE pattern matching term anywhere, with LIKE
// wildcards in term escaped.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
