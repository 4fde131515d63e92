package view

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/storage"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// ExportFormats lists the supported export formats
func ExportFormats() []string {
	return []string{FormatCSV, FormatJSON, FormatPDF}
}

// Export writes list to w in format
func Export(w io.Writer, list domain.TaskList, catalog Catalog, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return exportCSV(w, list, catalog)
	case FormatJSON:
		return exportJSON(w, list)
	case FormatPDF:
		return exportPDF(w, list, catalog)
	default:
		return errors.NewInvalidInputError("format", format, "supported formats are "+strings.Join(ExportFormats(), ", "))
	}
}

func exportCSV(w io.Writer, list domain.TaskList, catalog Catalog) error {
	writer := csv.NewWriter(w)

	header := []string{"position", "id", "text", "completed", "start", "end", "time", "created_at"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, task := range list {
		start, end := "", ""
		if task.TimeRange != nil {
			start, end = task.TimeRange.Start, task.TimeRange.End
		}
		record := []string{
			strconv.Itoa(i + 1),
			task.ID,
			task.Text,
			strconv.FormatBool(task.Completed),
			start,
			end,
			FormatTimeRange(task.TimeRange, catalog),
			task.CreatedTime().UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportJSON(w io.Writer, list domain.TaskList) error {
	envelope := storage.Envelope{
		Version: storage.CurrentVersion,
		Tasks:   storage.NewTaskMapper().ToRecords(list),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(envelope)
}

func exportPDF(w io.Writer, list domain.TaskList, catalog Catalog) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(catalog.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(catalog.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if list.IsEmpty() {
		pdf.MultiCell(0, 6, tr(catalog.Placeholder), "0", "L", false)
	}
	for i, task := range list {
		status := catalog.Open
		if task.Completed {
			status = catalog.Done
		}
		line := fmt.Sprintf("%d. [%s] %s (%s)", i+1, status, task.Text, FormatTimeRange(task.TimeRange, catalog))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(40, 6, tr(catalog.Counter(list.Len())))

	return pdf.Output(w)
}
