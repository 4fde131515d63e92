package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	apperrors "todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/services"
	"todo-list/internal/storage"
	"todo-list/internal/ui"
	"todo-list/internal/view"
)

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.Color = false
	return cfg
}

func sequentialIDs() services.IDGenerator {
	n := 0
	return func(time.Time) string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// setupTestApp builds an app over an in-memory SQLite store
func setupTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	adapter, err := storage.NewAdapter(repo, cfg.Storage.Key, nil)
	require.NoError(t, err)

	service := services.NewTodoService(adapter, services.WithIDGenerator(sequentialIDs()))
	service.Init(context.Background())

	out := &bytes.Buffer{}
	app := NewApp(service, cfg, out)
	app.repo = repo
	return app, out
}

func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return terminal }
	t.Cleanup(func() { isTerminal = orig })
}

// uiCall records one run of the interactive UI
type uiCall struct {
	ctx     context.Context
	catalog view.Catalog
	opts    ui.Options
}

func stubUI(t *testing.T) *[]uiCall {
	t.Helper()
	var calls []uiCall
	orig := runUI
	runUI = func(ctx context.Context, service services.TodoService, catalog view.Catalog, opts ui.Options) error {
		calls = append(calls, uiCall{ctx: ctx, catalog: catalog, opts: opts})
		return nil
	}
	t.Cleanup(func() { runUI = orig })
	return &calls
}

// recordingCommand records the context it ran with and returns err
type recordingCommand struct {
	ctx  context.Context
	args []string
	err  error
}

func (c *recordingCommand) Execute(ctx context.Context, args []string) error {
	c.ctx = ctx
	c.args = args
	return c.err
}

func TestNewApp(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	assert.NotNil(t, app.service)
	assert.NotNil(t, app.registry)
	assert.Equal(t, "en", app.catalog.Locale)

	cfg := testConfig()
	cfg.Display.Locale = "zh-CN"
	app, _ = setupTestApp(t, cfg)
	assert.Equal(t, "zh", app.catalog.Locale)
}

func TestApp_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to the named command", func(t *testing.T) {
		app, out := setupTestApp(t, nil)
		require.NoError(t, app.Run(ctx, []string{"add", "Buy", "milk"}))
		assert.Equal(t, "Added: Buy milk\n", out.String())
		assert.Equal(t, 1, app.service.Count())
	})

	t.Run("unknown command", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)
		err := app.Run(ctx, []string{"frobnicate"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})

	t.Run("no arguments lists when not on a terminal", func(t *testing.T) {
		stubTerminal(t, false)
		calls := stubUI(t)
		app, out := setupTestApp(t, nil)
		require.NoError(t, app.Run(ctx, nil))
		assert.Contains(t, out.String(), "No tasks yet — create one!")
		assert.Empty(t, *calls)
	})

	t.Run("no arguments opens the UI on a terminal", func(t *testing.T) {
		stubTerminal(t, true)
		calls := stubUI(t)
		app, out := setupTestApp(t, nil)
		require.NoError(t, app.Run(ctx, nil))
		assert.Empty(t, out.String())
		assert.Len(t, *calls, 1)
	})
}

func TestApp_DefaultCommand(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	stubTerminal(t, true)
	assert.Equal(t, commandTUI, app.DefaultCommand())

	stubTerminal(t, false)
	assert.Equal(t, commandList, app.DefaultCommand())
}

func TestApp_ExecuteTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Application.Timeout = 3 * time.Second
	app, _ := setupTestApp(t, cfg)

	cmd := &recordingCommand{}
	require.NoError(t, app.execute(context.Background(), commandList, cmd, []string{"x"}))
	deadline, ok := cmd.ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(3*time.Second), deadline, time.Second)
	assert.Equal(t, []string{"x"}, cmd.args)

	cmd = &recordingCommand{}
	require.NoError(t, app.execute(context.Background(), commandTUI, cmd, nil))
	_, ok = cmd.ctx.Deadline()
	assert.False(t, ok, "the interactive UI must not be bounded by the command timeout")
}

func TestApp_ExecuteLogsFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"storage failure is logged", apperrors.NewStorageError("set item", stderrors.New("disk full")), true},
		{"plain failure is logged", stderrors.New("boom"), true},
		{"rejected input is not logged", apperrors.NewNotFoundError("task", "9"), false},
		{"success is not logged", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupTestApp(t, nil)
			logs := &bytes.Buffer{}
			app.logger = logging.New(logs, logging.Options{Level: "error", Format: "logfmt"})

			err := app.execute(context.Background(), commandList, &recordingCommand{err: tt.err}, nil)
			assert.Equal(t, tt.err, err)
			if !tt.wantLog {
				assert.Empty(t, logs.String())
				return
			}
			assert.Contains(t, logs.String(), "command failed")
			assert.Contains(t, logs.String(), "code="+apperrors.GetErrorCode(tt.err))
		})
	}
}

func TestOpenApp(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested", ".td")
	ctx := context.Background()

	app, err := OpenApp(ctx, cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, app.Run(ctx, []string{"add", "persisted"}))
	require.NoError(t, app.Close())

	out := &bytes.Buffer{}
	reopened, err := OpenApp(ctx, cfg, out)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, 1, reopened.service.Count())
	assert.Equal(t, "persisted", reopened.service.Tasks()[0].Text)
	assert.FileExists(t, cfg.GetDatabasePath())
}

func TestOpenApp_BadDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = config.DriverMySQL
	cfg.Storage.DSN = "not a dsn"

	_, err := OpenApp(context.Background(), cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
