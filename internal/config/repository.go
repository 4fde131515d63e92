package config

import (
	"fmt"
	"os"

	"todo-list/internal/repository"
	"todo-list/internal/repository/mysql"
	"todo-list/internal/repository/sqlite"
)

// RepositoryOptions returns the store timeouts from configuration
func (c *Config) RepositoryOptions() repository.Options {
	return repository.Options{
		QueryTimeout: c.GetQueryTimeout(),
		WriteTimeout: c.GetWriteTimeout(),
	}
}

// CreateRepository opens the configured key-value store
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Storage.Driver {
	case DriverMySQL:
		repo, err := mysql.New(config.Storage.DSN, config.RepositoryOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		dbPath := config.GetDatabasePath()
		if dbPath != sqlite.MemoryPath {
			if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		repo, err := sqlite.NewWithOptions(dbPath, config.RepositoryOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	}
}

