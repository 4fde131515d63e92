package view

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/storage"
)

func exportList() domain.TaskList {
	return domain.TaskList{
		{ID: "b", Text: "Write, then review", CreatedAt: 1700000000000, TimeRange: domain.NewTimeRange("14:00", "16:00")},
		{ID: "a", Text: "Read", Completed: true, CreatedAt: 1699999999000},
	}
}

func TestExport_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportList(), CatalogFor("en"), "csv"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"position", "id", "text", "completed", "start", "end", "time", "created_at"}, records[0])
	assert.Equal(t, []string{"1", "b", "Write, then review", "false", "14:00", "16:00", "14:00 - 16:00", "2023-11-14T22:13:20Z"}, records[1])
	assert.Equal(t, []string{"2", "a", "Read", "true", "", "", "all day", "2023-11-14T22:13:19Z"}, records[2])
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportList(), CatalogFor("en"), "JSON"))

	codec, err := storage.NewCodec()
	require.NoError(t, err)
	decoded, err := codec.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, exportList(), decoded)
}

func TestExport_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportList(), CatalogFor("en"), "pdf"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	buf.Reset()
	require.NoError(t, Export(&buf, nil, CatalogFor("en"), "pdf"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, exportList(), CatalogFor("en"), "xml")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Zero(t, buf.Len())
}
