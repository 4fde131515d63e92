package services

import (
	"context"

	"todo-list/internal/domain"
)

// Store loads and saves the whole task list
type Store interface {
	Load(ctx context.Context) domain.TaskList
	Save(ctx context.Context, list domain.TaskList) error
}

// Listener is called with the current snapshot after Init and after every
// mutation, including one whose save failed
type Listener func(list domain.TaskList)

// TodoService owns the in-memory task list and keeps it in sync with the
// store. It is not safe for concurrent use.
type TodoService interface {
	// Lifecycle
	Init(ctx context.Context)
	OnChange(listener Listener)

	// Mutations
	Add(ctx context.Context, text, start, end string) (*domain.Task, error)
	Toggle(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)

	// Queries
	Resolve(ref string) (domain.Task, error)
	Tasks() domain.TaskList
	Count() int
}
