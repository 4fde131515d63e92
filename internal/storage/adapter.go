package storage

import (
	"context"

	"github.com/charmbracelet/log"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
)

// Adapter loads and saves the task list under one key of a repository
type Adapter struct {
	repo   repository.Repository
	key    string
	codec  *Codec
	logger *log.Logger
}

// NewAdapter creates an adapter for key. A nil logger discards output.
func NewAdapter(repo repository.Repository, key string, logger *log.Logger) (*Adapter, error) {
	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Adapter{repo: repo, key: key, codec: codec, logger: logger}, nil
}

// Key returns the storage key
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the stored list. A missing key yields an empty list, as
// does any read or decode failure, which is logged and not returned.
func (a *Adapter) Load(ctx context.Context) domain.TaskList {
	value, ok, err := a.repo.GetItem(ctx, a.key)
	if err != nil {
		a.logger.Warn("could not read stored tasks, starting empty", "key", a.key, "err", err)
		return domain.TaskList{}
	}
	if !ok {
		a.logger.Debug("no stored tasks", "key", a.key)
		return domain.TaskList{}
	}

	list, version, err := a.codec.DecodeVersion([]byte(value))
	if err != nil {
		a.logger.Warn("stored tasks are unreadable, starting empty", "key", a.key,
			"err", errors.NewCorruptDataError(a.key, err))
		return domain.TaskList{}
	}
	if version == LegacyVersion {
		a.logger.Info("loaded unversioned task list, it will be upgraded on save", "key", a.key)
	}
	a.logger.Debug("loaded tasks", "key", a.key, "tasks", list.Len(), "version", version)
	return list
}

// Save overwrites the stored value with list
func (a *Adapter) Save(ctx context.Context, list domain.TaskList) error {
	data, err := a.codec.Encode(list)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	if err := a.repo.SetItem(ctx, a.key, string(data)); err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return err
		}
		return errors.NewStorageError("save tasks", err)
	}
	a.logger.Debug("saved tasks", "key", a.key, "tasks", list.Len())
	return nil
}
