package cli

import (
	"context"
	"sort"
	"strings"

	"todo-list/internal/errors"
)

// Command names
const (
	commandAdd    = "add"
	commandToggle = "toggle"
	commandDelete = "delete"
	commandList   = "list"
	commandExport = "export"
	commandTUI    = "tui"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	app      *App
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry with every command in
// its default configuration
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		app:      app,
		commands: make(map[string]Command),
	}

	registry.Register(commandAdd, NewAddCommand(app))
	registry.Register(commandToggle, NewToggleCommand(app))
	registry.Register(commandDelete, NewDeleteCommand(app))
	registry.Register(commandList, NewListCommand(app))
	registry.Register(commandExport, NewExportCommand(app))
	registry.Register(commandTUI, NewTUICommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Names returns the registered command names in order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		reason := "unknown command, expected one of " + strings.Join(r.Names(), ", ") + "; " + r.GetUsage()
		return errors.NewInvalidInputError("command", commandName, reason)
	}
	return r.app.execute(ctx, commandName, command, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return `usage: td add "your task" [--start HH:MM] [--end HH:MM] or td toggle <n|id> or td delete <n|id> or td list [--ids] or td export --format csv|json|pdf or td tui`
}
