package sqlite

import (
	"context"
	"database/sql"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// SQLiteRepository implements repository.Repository on a storage_items table
type SQLiteRepository struct {
	db   *sql.DB
	opts repository.Options
	now  func() time.Time
}

// New creates a new SQLite repository instance with default timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, repository.DefaultOptions())
}

// NewWithOptions creates a new SQLite repository and runs pending migrations
func NewWithOptions(dbPath string, opts repository.Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// every connection to :memory: is a separate database
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := repository.WithTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetItem returns the value stored under key and whether it exists
func (r *SQLiteRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	item, err := r.GetItemRecord(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

// GetItemRecord returns the full row for key, or a not found error
func (r *SQLiteRepository) GetItemRecord(ctx context.Context, key string) (*repository.Item, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT key, value, updated_at
	FROM storage_items
	WHERE key = ?`

	return repository.QuerySingle(ctx, r.db, query, repository.ScanItem, "item", key, key)
}

// SetItem stores value under key, replacing any previous value
func (r *SQLiteRepository) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := repository.WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO storage_items (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return repository.Execute(ctx, r.db, "set item", query, key, value, repository.FormatTimeForDB(r.now()))
}

// RemoveItem deletes key if present
func (r *SQLiteRepository) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := repository.WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	return repository.Execute(ctx, r.db, "remove item", `DELETE FROM storage_items WHERE key = ?`, key)
}
