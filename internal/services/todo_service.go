package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/validation"
)

// maxIDAttempts bounds regeneration when a generated id is already taken
const maxIDAttempts = 8

// Option configures a TodoService
type Option func(*todoServiceImpl)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *todoServiceImpl) { s.now = now }
}

// WithIDGenerator replaces NewTaskID
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *todoServiceImpl) { s.newID = gen }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(s *todoServiceImpl) { s.logger = logger }
}

// WithValidator replaces the default task validator
func WithValidator(v *validation.TaskValidator) Option {
	return func(s *todoServiceImpl) { s.validator = v }
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	store     Store
	tasks     domain.TaskList
	listeners []Listener
	validator *validation.TaskValidator
	newID     IDGenerator
	now       func() time.Time
	logger    *log.Logger
}

// NewTodoService creates a TodoService over store. Call Init before use.
func NewTodoService(store Store, opts ...Option) TodoService {
	s := &todoServiceImpl{
		store:     store,
		tasks:     domain.TaskList{},
		validator: validation.NewTaskValidator(),
		newID:     NewTaskID,
		now:       time.Now,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the persisted list and notifies listeners
func (s *todoServiceImpl) Init(ctx context.Context) {
	s.tasks = s.store.Load(ctx)
	s.notify()
}

// OnChange registers a listener
func (s *todoServiceImpl) OnChange(listener Listener) {
	s.listeners = append(s.listeners, listener)
}

// Add validates input and prepends a new task. Invalid input leaves the
// list untouched and nothing is persisted.
func (s *todoServiceImpl) Add(ctx context.Context, text, start, end string) (*domain.Task, error) {
	if err := s.validator.ValidateTaskForCreation(text, start, end); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	now := s.now()
	id, err := s.uniqueID(now)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(id, strings.TrimSpace(text), now, domain.NewTimeRange(start, end))
	s.logger.Debug("adding task", "id", task.ID)

	return &task, s.commit(ctx, s.tasks.Prepend(task))
}

// Toggle flips the completion flag of the task with id. An unknown id is a
// no-op and reports false.
func (s *todoServiceImpl) Toggle(ctx context.Context, id string) (bool, error) {
	next, found := s.tasks.Toggle(id)
	if !found {
		s.logger.Debug("toggle: no such task", "id", id)
		return false, nil
	}
	return true, s.commit(ctx, next)
}

// Delete removes the task with id. An unknown id is a no-op and reports false.
func (s *todoServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	next, found := s.tasks.Remove(id)
	if !found {
		s.logger.Debug("delete: no such task", "id", id)
		return false, nil
	}
	return true, s.commit(ctx, next)
}

// Resolve finds a task by 1-based position, exact id or unique id prefix
func (s *todoServiceImpl) Resolve(ref string) (domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Task{}, errors.NewInvalidInputError("task", ref, "a task number or id is required")
	}

	if isDigits(ref) {
		n, err := strconv.Atoi(ref)
		if err != nil || n < 1 || n > s.tasks.Len() {
			return domain.Task{}, errors.NewNotFoundError("task", ref)
		}
		return s.tasks[n-1], nil
	}

	if task, ok := s.tasks.Find(ref); ok {
		return task, nil
	}

	var matches []domain.Task
	for _, task := range s.tasks {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Task{}, errors.NewNotFoundError("task", ref)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, errors.NewInvalidInputError("task", ref,
			"prefix matches "+strconv.Itoa(len(matches))+" tasks")
	}
}

// Tasks returns the current snapshot
func (s *todoServiceImpl) Tasks() domain.TaskList {
	return s.tasks
}

// Count returns the number of tasks
func (s *todoServiceImpl) Count() int {
	return s.tasks.Len()
}

// commit installs next as the current list, persists it and notifies
// listeners. The in-memory list advances even when saving fails.
func (s *todoServiceImpl) commit(ctx context.Context, next domain.TaskList) error {
	s.tasks = next
	err := s.store.Save(ctx, next)
	if err != nil {
		s.logger.Error("could not save tasks", "tasks", next.Len(), "err", err)
	}
	s.notify()
	return err
}

func (s *todoServiceImpl) notify() {
	for _, listener := range s.listeners {
		listener(s.tasks)
	}
}

func (s *todoServiceImpl) uniqueID(now time.Time) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID(now)
		if id != "" && s.tasks.IndexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errors.NewInvalidInputError("id", nil, "could not generate a unique task id")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
