package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
)

const createItemsTable = `CREATE TABLE IF NOT EXISTS storage_items (
    ` + "`key`" + ` VARCHAR(191) PRIMARY KEY NOT NULL,
    ` + "`value`" + ` MEDIUMTEXT NOT NULL,
    updated_at VARCHAR(32) NOT NULL
) CHARACTER SET utf8mb4`

// MySQLRepository implements repository.Repository on a MySQL table
type MySQLRepository struct {
	db   *sql.DB
	opts repository.Options
	now  func() time.Time
}

// NormalizeDSN parses dsn and applies the configured timeouts to the
// connection. Timestamps are kept as strings.
func NormalizeDSN(dsn string, opts repository.Options) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", errors.NewInvalidInputError("dsn", "<redacted>", err.Error())
	}
	cfg.ParseTime = false
	if cfg.Timeout == 0 {
		cfg.Timeout = opts.QueryTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = opts.QueryTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = opts.WriteTimeout
	}
	return cfg.FormatDSN(), nil
}

// New connects to MySQL and creates the items table if needed
func New(dsn string, opts repository.Options) (*MySQLRepository, error) {
	normalized, err := NormalizeDSN(dsn, opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	ctx, cancel := repository.WithTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, repository.HandleStorageError("connect", err)
	}

	r := &MySQLRepository{db: db, opts: opts, now: time.Now}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *MySQLRepository) migrate(ctx context.Context) error {
	return repository.Execute(ctx, r.db, "create items table", createItemsTable)
}

// Close closes the connection pool
func (r *MySQLRepository) Close() error { return r.db.Close() }

// GetItem returns the value stored under key and whether it exists
func (r *MySQLRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := "SELECT `key`, `value`, updated_at FROM storage_items WHERE `key` = ?"
	item, err := repository.QuerySingle(ctx, r.db, query, repository.ScanItem, "item", key, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

// SetItem stores value under key, replacing any previous value
func (r *MySQLRepository) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := repository.WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := "INSERT INTO storage_items (`key`, `value`, updated_at) VALUES (?, ?, ?) " +
		"ON DUPLICATE KEY UPDATE `value` = VALUES(`value`), updated_at = VALUES(updated_at)"
	return repository.Execute(ctx, r.db, "set item", query, key, value, repository.FormatTimeForDB(r.now()))
}

// RemoveItem deletes key if present
func (r *MySQLRepository) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := repository.WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	return repository.Execute(ctx, r.db, "remove item", "DELETE FROM storage_items WHERE `key` = ?", key)
}
