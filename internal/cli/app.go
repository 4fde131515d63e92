package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"todo-list/internal/config"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/services"
	"todo-list/internal/storage"
	"todo-list/internal/validation"
	"todo-list/internal/view"
)

// isTerminal reports whether stdout is a terminal. Replaced in tests.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// App represents the main CLI application
type App struct {
	service  services.TodoService
	catalog  view.Catalog
	config   *config.Config
	logger   *log.Logger
	out      io.Writer
	repo     repository.Repository
	registry *CommandRegistry
}

// NewApp creates a new CLI application over an initialised service
func NewApp(service services.TodoService, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	app := &App{
		service: service,
		catalog: view.CatalogFor(cfg.Display.Locale),
		config:  cfg,
		logger:  logging.Discard(),
		out:     out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// OpenApp opens the configured store, loads the task list and builds the
// application on top of it. Close releases the store.
func OpenApp(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error) {
	logger := logging.New(os.Stderr, logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Timestamps: cfg.Application.Verbose,
	})

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}

	adapter, err := storage.NewAdapter(repo, cfg.Storage.Key, logger)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	service := services.NewTodoService(adapter,
		services.WithLogger(logger),
		services.WithValidator(validation.NewTaskValidatorWithConfig(cfg)),
	)
	service.Init(ctx)

	logger.Debug("store opened", "driver", cfg.Storage.Driver, "key", cfg.Storage.Key, "tasks", service.Count())

	app := NewApp(service, cfg, out)
	app.logger = logger
	app.repo = repo
	return app, nil
}

// Close releases the store, if the app owns one
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// Run executes the named command with the given arguments. With no
// arguments the default command runs.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.registry.Execute(ctx, a.DefaultCommand(), nil)
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// DefaultCommand is the interactive UI on a terminal and the plain list
// otherwise
func (a *App) DefaultCommand() string {
	if isTerminal() {
		return commandTUI
	}
	return commandList
}

// execute runs command under the application timeout. The interactive UI
// runs until the user quits, so it only inherits ctx.
func (a *App) execute(ctx context.Context, name string, command Command, args []string) error {
	if name != commandTUI {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.getAppTimeout())
		defer cancel()
	}
	a.logger.Debug("running command", "command", name)
	err := command.Execute(ctx, args)
	if err != nil && errors.ShouldLogError(err) {
		a.logger.Error("command failed", "command", name, "code", errors.GetErrorCode(err), "err", err)
	}
	return err
}

// getAppTimeout returns the configured application timeout
func (a *App) getAppTimeout() time.Duration {
	if a.config != nil && a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 60 * time.Second
}
