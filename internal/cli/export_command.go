package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"todo-list/internal/errors"
	"todo-list/internal/view"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Format string
	Output string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.catalog),
		Format:       view.FormatCSV,
	}
}

// Execute writes the task list to Output, or to stdout when Output is empty
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", commandExport, "usage: td export --format csv|json|pdf [--output FILE]")
	}

	if c.Output == "" {
		return c.export(c.app.out)
	}

	file, err := os.Create(c.Output)
	if err != nil {
		return c.errorHandler.Handle("export tasks", errors.WrapError(err, errors.ErrorTypeInvalidInput, "cannot create "+c.Output))
	}
	if err := c.export(file); err != nil {
		file.Close()
		os.Remove(c.Output)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	fmt.Fprintf(c.app.out, c.app.catalog.Exported+"\n", c.app.catalog.Counter(c.app.service.Count()), c.Output)
	return nil
}

func (c *ExportCommand) export(w io.Writer) error {
	if err := view.Export(w, c.app.service.Tasks(), c.app.catalog, c.Format); err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}
	return nil
}
