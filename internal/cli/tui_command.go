package cli

import (
	"context"
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/ui"
)

// runUI starts the interactive program. Replaced in tests.
var runUI = ui.Run

// TUICommand handles the interactive terminal UI
type TUICommand struct {
	app *App
}

// NewTUICommand creates a new interactive UI command handler
func NewTUICommand(app *App) *TUICommand {
	return &TUICommand{app: app}
}

// Execute runs the UI until the user quits
func (c *TUICommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", commandTUI, "usage: td tui")
	}

	opts := ui.Options{
		Color:         c.app.config.Display.Color,
		ShowIDs:       c.app.config.Display.ShowIDs,
		TextMaxLength: c.app.config.Validation.TextMaxLength,
	}
	if err := runUI(ctx, c.app.service, c.app.catalog, opts); err != nil {
		return fmt.Errorf("failed to run interactive UI: %w", err)
	}
	return nil
}
