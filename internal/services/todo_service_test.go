package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/storage"
	"todo-list/internal/validation"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func sequentialIDs() IDGenerator {
	n := 0
	return func(time.Time) string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func setupStore(t *testing.T) *storage.Adapter {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	adapter, err := storage.NewAdapter(repo, "modernTodoItems", nil)
	require.NoError(t, err)
	return adapter
}

func setupTodoService(t *testing.T) (TodoService, *storage.Adapter) {
	t.Helper()
	store := setupStore(t)
	service := NewTodoService(store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()))
	service.Init(context.Background())
	return service, store
}

// recordingStore counts saves and can be told to fail
type recordingStore struct {
	initial domain.TaskList
	saved   []domain.TaskList
	saveErr error
}

func (r *recordingStore) Load(ctx context.Context) domain.TaskList { return r.initial }
func (r *recordingStore) Save(ctx context.Context, list domain.TaskList) error {
	r.saved = append(r.saved, list)
	return r.saveErr
}

func TestTodoService_Add(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		start     string
		end       string
		wantErr   bool
		wantField string
		wantText  string
		wantRange *domain.TimeRange
	}{
		{name: "text only", text: "Buy milk", wantText: "Buy milk", wantRange: domain.NewTimeRange("", "")},
		{name: "text is trimmed", text: "  Call mum \n", wantText: "Call mum", wantRange: domain.NewTimeRange("", "")},
		{name: "full range", text: "Stand-up", start: "09:00", end: "09:15", wantText: "Stand-up", wantRange: domain.NewTimeRange("09:00", "09:15")},
		{name: "start only", text: "Gym", start: "18:00", wantText: "Gym", wantRange: domain.NewTimeRange("18:00", "")},
		{name: "empty text", text: "", wantErr: true, wantField: validation.FieldText},
		{name: "whitespace text", text: "   ", wantErr: true, wantField: validation.FieldText},
		{name: "end before start", text: "Meeting", start: "10:00", end: "09:00", wantErr: true, wantField: validation.FieldTimeRange},
		{name: "equal times", text: "Meeting", start: "10:00", end: "10:00", wantErr: true, wantField: validation.FieldTimeRange},
		{name: "bad clock", text: "Meeting", start: "9am", wantErr: true, wantField: validation.FieldStartTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := setupTodoService(t)
			ctx := context.Background()

			task, err := service.Add(ctx, tt.text, tt.start, tt.end)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, task)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				ve, ok := validation.AsValidationError(err)
				require.True(t, ok)
				assert.True(t, ve.HasFieldError(tt.wantField))
				assert.Equal(t, 0, service.Count())
				assert.True(t, store.Load(ctx).IsEmpty())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, "id-1", task.ID)
			assert.Equal(t, tt.wantText, task.Text)
			assert.False(t, task.Completed)
			assert.Equal(t, fixedNow.UnixMilli(), task.CreatedAt)
			assert.Equal(t, tt.wantRange, task.TimeRange)
			assert.Equal(t, domain.TaskList{*task}, service.Tasks())
			assert.Equal(t, service.Tasks(), store.Load(ctx))
		})
	}
}

func TestTodoService_AddPrepends(t *testing.T) {
	service, _ := setupTodoService(t)
	ctx := context.Background()

	_, err := service.Add(ctx, "first", "", "")
	require.NoError(t, err)
	_, err = service.Add(ctx, "second", "", "")
	require.NoError(t, err)

	require.Equal(t, 2, service.Count())
	assert.Equal(t, "second", service.Tasks()[0].Text)
	assert.Equal(t, "first", service.Tasks()[1].Text)
}

func TestTodoService_AddTextLimit(t *testing.T) {
	cfgValidator := validation.NewTaskValidator()
	service := NewTodoService(&recordingStore{}, WithValidator(cfgValidator))
	service.Init(context.Background())

	_, err := service.Add(context.Background(), strings.Repeat("x", validation.DefaultTextMaxLength+1), "", "")
	ve, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, validation.ErrorTypeInvalidLength, ve.Errors[0].Type)
}

func TestTodoService_Toggle(t *testing.T) {
	service, store := setupTodoService(t)
	ctx := context.Background()

	task, err := service.Add(ctx, "Read", "", "")
	require.NoError(t, err)

	found, err := service.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, service.Tasks()[0].Completed)
	assert.True(t, store.Load(ctx)[0].Completed)

	found, err = service.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, service.Tasks()[0].Completed)
	assert.False(t, store.Load(ctx)[0].Completed)
}

func TestTodoService_ToggleUnknown(t *testing.T) {
	store := &recordingStore{initial: domain.TaskList{{ID: "a", Text: "x"}}}
	service := NewTodoService(store)
	service.Init(context.Background())
	before := service.Tasks().Clone()

	found, err := service.Toggle(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, service.Tasks())
	assert.Empty(t, store.saved)
}

func TestTodoService_Delete(t *testing.T) {
	service, store := setupTodoService(t)
	ctx := context.Background()

	task, err := service.Add(ctx, "Only task", "", "")
	require.NoError(t, err)

	found, err := service.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, service.Count())
	assert.True(t, store.Load(ctx).IsEmpty())

	found, err = service.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTodoService_DeleteKeepsOrder(t *testing.T) {
	store := &recordingStore{initial: domain.TaskList{{ID: "c", Text: "3"}, {ID: "b", Text: "2"}, {ID: "a", Text: "1"}}}
	service := NewTodoService(store)
	service.Init(context.Background())

	_, err := service.Delete(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, service.Tasks().IDs())
	require.Len(t, store.saved, 1)
}

func TestTodoService_InitLoadsPersisted(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	persisted := domain.TaskList{{ID: "a", Text: "kept", CreatedAt: 1, TimeRange: domain.NewTimeRange("", "")}}
	require.NoError(t, store.Save(ctx, persisted))

	service := NewTodoService(store)
	var notified domain.TaskList
	service.OnChange(func(list domain.TaskList) { notified = list })
	service.Init(ctx)

	assert.Equal(t, persisted, service.Tasks())
	assert.Equal(t, persisted, notified)
}

func TestTodoService_OnChange(t *testing.T) {
	service, _ := setupTodoService(t)
	ctx := context.Background()

	var counts []int
	service.OnChange(func(list domain.TaskList) { counts = append(counts, list.Len()) })

	task, err := service.Add(ctx, "a", "", "")
	require.NoError(t, err)
	_, err = service.Add(ctx, "", "", "")
	require.Error(t, err)
	_, err = service.Toggle(ctx, "missing")
	require.NoError(t, err)
	_, err = service.Toggle(ctx, task.ID)
	require.NoError(t, err)
	_, err = service.Delete(ctx, task.ID)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 0}, counts)
}

func TestTodoService_SaveFailureKeepsMutation(t *testing.T) {
	store := &recordingStore{saveErr: errors.NewStorageError("set item", stderrors.New("quota exceeded"))}
	service := NewTodoService(store)
	var notified []domain.TaskList
	service.OnChange(func(list domain.TaskList) { notified = append(notified, list) })
	service.Init(context.Background())

	task, err := service.Add(context.Background(), "Unsaved", "", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
	require.NotNil(t, task)
	assert.Equal(t, 1, service.Count())
	assert.Len(t, store.saved, 1)

	// listeners see the Init snapshot and then the unsaved mutation
	require.Len(t, notified, 2)
	assert.Equal(t, 0, notified[0].Len())
	assert.Equal(t, 1, notified[1].Len())
}

func TestTodoService_UniqueIDs(t *testing.T) {
	store := &recordingStore{initial: domain.TaskList{{ID: "dup", Text: "x"}}}
	calls := 0
	gen := func(time.Time) string {
		calls++
		if calls < 3 {
			return "dup"
		}
		return "fresh"
	}
	service := NewTodoService(store, WithIDGenerator(gen))
	service.Init(context.Background())

	task, err := service.Add(context.Background(), "y", "", "")
	require.NoError(t, err)
	assert.Equal(t, "fresh", task.ID)

	stuck := NewTodoService(store, WithIDGenerator(func(time.Time) string { return "dup" }))
	stuck.Init(context.Background())
	_, err = stuck.Add(context.Background(), "z", "", "")
	assert.Error(t, err)
}

func TestTodoService_Resolve(t *testing.T) {
	store := &recordingStore{initial: domain.TaskList{
		{ID: "7f3a9c10-0000-4000-8000-000000000001", Text: "newest"},
		{ID: "7f3b0000-0000-4000-8000-000000000002", Text: "middle"},
		{ID: "todo-1700000000000-ab", Text: "oldest"},
	}}
	service := NewTodoService(store)
	service.Init(context.Background())

	tests := []struct {
		name     string
		ref      string
		wantText string
		wantType errors.ErrorType
	}{
		{"position 1", "1", "newest", 0},
		{"position 3", " 3 ", "oldest", 0},
		{"position 0", "0", "", errors.ErrorTypeNotFound},
		{"position past end", "4", "", errors.ErrorTypeNotFound},
		{"exact id", "todo-1700000000000-ab", "oldest", 0},
		{"unique prefix", "7f3b", "middle", 0},
		{"ambiguous prefix", "7f3", "", errors.ErrorTypeInvalidInput},
		{"no match", "zzz", "", errors.ErrorTypeNotFound},
		{"empty", "  ", "", errors.ErrorTypeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := service.Resolve(tt.ref)
			if tt.wantText != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantText, task.Text)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, tt.wantType), "got %v", err)
		})
	}
}
