package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/view"
)

// annotationStore marks commands that need an open store
const annotationStore = "td/store"

// AppFactory builds the application for a loaded configuration
type AppFactory func(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd  *cobra.Command
	open AppFactory
	app  *App
}

// NewRootCommand creates the root cobra command with global flags. A nil
// factory opens the configured store.
func NewRootCommand(open AppFactory) *RootCommand {
	if open == nil {
		open = OpenApp
	}
	root := &RootCommand{open: open}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A terminal to-do list",
		Long: `td keeps a to-do list in a local SQLite file (or a MySQL table).

Run without a command on a terminal to open the interactive list; when the
output is redirected, td prints the list instead.

EXAMPLES:
  td add "Buy milk"                         # Add a task
  td add Stand-up --start 09:00 --end 09:15 # Add a task with a time range
  td list --ids                             # List tasks with their ids
  td toggle 1                               # Mark the first task done (or open again)
  td delete 3f2a                            # Delete the task whose id starts with 3f2a
  td export --format pdf --output todo.pdf  # Export the list

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is ~/.td/config.toml, or the file named by --config or TD_CONFIG.

  Storage:
    TD_DB_DRIVER                           sqlite or mysql (default: sqlite)
    TD_DB_DIR                              Database directory (default: ~/.td)
    TD_DB_FILENAME                         Database filename (default: td.db)
    TD_DB_DSN                              MySQL DSN
    TD_STORAGE_KEY                         Key the list is stored under (default: modernTodoItems)
    TD_DB_QUERY_TIMEOUT                    Read timeout (default: 10s)
    TD_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display:
    TD_DISPLAY_LOCALE                      ` + strings.Join(view.Locales(), " or ") + ` (default: en)
    TD_DISPLAY_COLOR                       Colored output (default: true)
    TD_DISPLAY_SHOW_IDS                    Show task ids (default: false)

  Application:
    TD_VALIDATION_TEXT_MAX                 Max task text length (default: 500)
    TD_APP_TIMEOUT                         Command timeout (default: 60s)
    TD_LOG_LEVEL                           debug, info, warn or error (default: warn)
    TD_LOG_FORMAT                          text, json or logfmt (default: text)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Annotations:   map[string]string{annotationStore: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationStore] != "true" {
				return nil
			}
			return root.openApp(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := root.app.DefaultCommand()
			return root.app.registry.Execute(cmd.Context(), name, nil)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and closes the store afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx and closes the store afterwards
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs sets the arguments, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOut sets the output writer
func (r *RootCommand) SetOut(w io.Writer) {
	r.cmd.SetOut(w)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TD_CONFIG)")

	// Storage configuration
	flags.String("driver", "", "Storage driver, sqlite or mysql (overrides TD_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TD_DB_FILENAME)")
	flags.String("dsn", "", "MySQL DSN (overrides TD_DB_DSN)")
	flags.String("storage-key", "", "Key the list is stored under (overrides TD_STORAGE_KEY)")

	// Display configuration
	flags.String("locale", "", "Message language (overrides TD_DISPLAY_LOCALE)")
	flags.Bool("no-color", false, "Disable colored output (overrides TD_DISPLAY_COLOR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides TD_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TD_LOG_LEVEL)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	needsStore := map[string]string{annotationStore: "true"}

	var start, end string
	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a task",
		Long: `Add a task to the top of the list. All arguments form the task text.

--start and --end take HH:MM times. Either may be omitted, but when both are
given the end must be after the start.`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: needsStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewAddCommand(r.app)
			handler.Start, handler.End = start, end
			return r.app.execute(cmd.Context(), commandAdd, handler, args)
		},
	}
	addCmd.Flags().StringVar(&start, "start", "", "Start time, HH:MM")
	addCmd.Flags().StringVar(&end, "end", "", "End time, HH:MM")

	toggleCmd := &cobra.Command{
		Use:         "toggle [n|id]",
		Aliases:     []string{"done"},
		Short:       "Mark a task done, or open again",
		Long:        "Flip the completion flag of a task, given its list number or (a unique prefix of) its id.",
		Args:        cobra.ExactArgs(1),
		Annotations: needsStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.registry.Execute(cmd.Context(), commandToggle, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:         "delete [n|id]",
		Aliases:     []string{"rm"},
		Short:       "Delete a task",
		Long:        "Delete a task, given its list number or (a unique prefix of) its id. This cannot be undone.",
		Args:        cobra.ExactArgs(1),
		Annotations: needsStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.registry.Execute(cmd.Context(), commandDelete, args)
		},
	}

	var showIDs bool
	listCmd := &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List tasks",
		Args:        cobra.NoArgs,
		Annotations: needsStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewListCommand(r.app)
			handler.ShowIDs = handler.ShowIDs || showIDs
			return r.app.execute(cmd.Context(), commandList, handler, args)
		},
	}
	listCmd.Flags().BoolVar(&showIDs, "ids", false, "Show task ids (overrides TD_DISPLAY_SHOW_IDS)")

	var format, output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task list",
		Long: `Export the task list.

Supported formats:
  ` + strings.Join(view.ExportFormats(), ", ") + `

Examples:
  td export > tasks.csv
  td export --format json
  td export --format pdf --output tasks.pdf`,
		Args:        cobra.NoArgs,
		Annotations: needsStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewExportCommand(r.app)
			handler.Format, handler.Output = format, output
			return r.app.execute(cmd.Context(), commandExport, handler, args)
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", view.FormatCSV, "Export format")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	tuiCmd := &cobra.Command{
		Use:         "tui",
		Short:       "Open the interactive list",
		Args:        cobra.NoArgs,
		Annotations: needsStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.registry.Execute(cmd.Context(), commandTUI, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		toggleCmd,
		deleteCmd,
		listCmd,
		exportCmd,
		tuiCmd,
	)
}

// openApp loads configuration with flag overrides and opens the app
func (r *RootCommand) openApp(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithOverrides(r.getOverrides(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app, err := r.open(cmd.Context(), cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	r.app = app
	return nil
}

// getOverrides collects the global flags the user actually set
func (r *RootCommand) getOverrides(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	overrides.ConfigFile = stringFlag("config")
	overrides.Driver = stringFlag("driver")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.DSN = stringFlag("dsn")
	overrides.StorageKey = stringFlag("storage-key")
	overrides.Locale = stringFlag("locale")
	overrides.LogLevel = stringFlag("log-level")

	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		overrides.NoColor = &noColor
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

func (r *RootCommand) close() {
	if r.app != nil {
		r.app.Close()
		r.app = nil
	}
}
