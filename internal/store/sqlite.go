package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/ArthurHoang15/notification-server/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database holding
// the raw JSON documents synced from the mobile backend.
type SQLiteRepo struct {
	db        *sql.DB
	defaultTZ string
}

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a
// repository. defaultTZ is applied to reminders without a timezone.
func OpenSQLite(ctx context.Context, path, defaultTZ string) (*SQLiteRepo, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db, defaultTZ: defaultTZ}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// ListUsers returns every user, normalized. Documents that fail to
// decode are skipped; one corrupt row must not block the sweep.
func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, doc FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.User
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		u, err := decodeUser(id, doc)
		if err != nil {
			continue
		}
		res = append(res, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// GetUser returns one user by id or ErrNotFound.
func (r *SQLiteRepo) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM users WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u, err := decodeUser(id, doc)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListReminders returns all of the user's reminders, inactive included.
func (r *SQLiteRepo) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, doc FROM reminders WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Reminder
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		rem, err := decodeReminder(id, userID, doc, r.defaultTZ)
		if err != nil {
			continue
		}
		res = append(res, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// ListActiveReminders returns the user's reminders with the active
// flag set. The active filter runs after normalization so both
// is_active and isActive documents are honored.
func (r *SQLiteRepo) ListActiveReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	all, err := r.ListReminders(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, rem := range all {
		if rem.Active {
			active = append(active, rem)
		}
	}
	return active, nil
}

// SaveUser upserts a raw user document.
func (r *SQLiteRepo) SaveUser(ctx context.Context, id string, doc []byte) error {
	if id == "" {
		return errors.New("empty user id")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			doc        = excluded.doc,
			updated_at = excluded.updated_at`,
		id, string(doc), time.Now().UTC().Unix(),
	)
	return err
}

// SaveReminder upserts a raw reminder document, assigning a fresh id
// when none is given.
func (r *SQLiteRepo) SaveReminder(ctx context.Context, id, userID string, doc []byte) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}
	if id == "" {
		id = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, user_id, doc, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id    = excluded.user_id,
			doc        = excluded.doc,
			updated_at = excluded.updated_at`,
		id, userID, string(doc), time.Now().UTC().Unix(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}
