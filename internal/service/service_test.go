package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"
	"taskKeeper/internal/service"
	"taskKeeper/internal/storage"
	"taskKeeper/internal/storage/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(true)
	os.Exit(m.Run())
}

// MockStore - мок хранилища
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadTasks(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockStore) SaveTasks(ctx context.Context, tasks []*task.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockStore) LoadTrash(ctx context.Context) ([]*task.DeletedTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.DeletedTask), args.Error(1)
}

func (m *MockStore) SaveTrash(ctx context.Context, trash []*task.DeletedTask) error {
	args := m.Called(ctx, trash)
	return args.Error(0)
}

func (m *MockStore) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ storage.Store = (*MockStore)(nil)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func validInput(title string) service.CreateTaskInput {
	return service.CreateTaskInput{
		Title:    title,
		Category: task.CategoryWork,
		Priority: task.PriorityMedium,
	}
}

// TestTaskManager_Create тестирует создание задачи и нормализацию полей
func TestTaskManager_Create(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	created, err := manager.Create(ctx, validInput("Полить цветы"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Полить цветы", created.Title)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.False(t, created.Completed)
	assert.Nil(t, created.LastCompleted)
	assert.Nil(t, created.NextDue)
	assert.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
	assert.Zero(t, created.TimeSpent)
	assert.Zero(t, created.XPEarned)
	assert.False(t, created.CreatedAt.IsZero())

	// id растут монотонно
	second, err := manager.Create(ctx, validInput("Вторая задача"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

// TestTaskManager_Create_Recurring тестирует вычисление nextDue при создании
func TestTaskManager_Create_Recurring(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	input := validInput("Еженедельный отчёт")
	input.Recurrence = task.RecurrenceWeekly

	created, err := manager.Create(ctx, input)
	require.NoError(t, err)

	require.NotNil(t, created.NextDue)
	// lastCompleted пуст, точка отсчёта — createdAt
	assert.Equal(t, created.CreatedAt.AddDate(0, 0, 7), *created.NextDue)
}

// TestTaskManager_Create_Validation тестирует отклонение неверного ввода
func TestTaskManager_Create_Validation(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	tests := []struct {
		name  string
		input service.CreateTaskInput
		field string
	}{
		{
			name:  "empty title",
			input: service.CreateTaskInput{Title: "   ", Category: task.CategoryWork, Priority: task.PriorityLow},
			field: "title",
		},
		{
			name: "title too long",
			input: service.CreateTaskInput{
				Title:    strings.Repeat("я", 101),
				Category: task.CategoryWork,
				Priority: task.PriorityLow,
			},
			field: "title",
		},
		{
			name:  "invalid category",
			input: service.CreateTaskInput{Title: "x", Category: "hobby", Priority: task.PriorityLow},
			field: "category",
		},
		{
			name:  "invalid priority",
			input: service.CreateTaskInput{Title: "x", Category: task.CategoryWork, Priority: "urgent"},
			field: "priority",
		},
		{
			name: "custom recurrence without interval",
			input: service.CreateTaskInput{
				Title:      "x",
				Category:   task.CategoryWork,
				Priority:   task.PriorityLow,
				Recurrence: task.RecurrenceCustom,
			},
			field: "recurrenceInterval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input.Recurrence == "" {
				tt.input.Recurrence = task.RecurrenceNone
			}

			_, err := manager.Create(ctx, tt.input)
			require.Error(t, err)

			var businessErr *service.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, service.CodeValidation, businessErr.Code)
			assert.Equal(t, tt.field, businessErr.Details["field"])
		})
	}
}

// TestTaskManager_Create_MalformedIntervalAccepted — кривой интервал не отклоняется,
// а сводится к повторению через день
func TestTaskManager_Create_MalformedIntervalAccepted(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	input := validInput("Задача с кривым интервалом")
	input.Recurrence = task.RecurrenceCustom
	input.RecurrenceInterval = strPtr("abc")

	created, err := manager.Create(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created.NextDue)
	assert.Equal(t, created.CreatedAt.AddDate(0, 0, 1), *created.NextDue)
}

// TestTaskManager_Update_RecurringCompletion тестирует перенос цикла:
// выполнение повторяющейся задачи не завершает её
func TestTaskManager_Update_RecurringCompletion(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	input := validInput("Ежедневная зарядка")
	input.Recurrence = task.RecurrenceDaily

	created, err := manager.Create(ctx, input)
	require.NoError(t, err)

	updated, err := manager.Update(ctx, created.ID, task.WithCompleted(true))
	require.NoError(t, err)

	// задача вернулась в ожидание, а не завершилась
	assert.False(t, updated.Completed)
	assert.Equal(t, task.StatusTodo, updated.Status)
	require.NotNil(t, updated.LastCompleted)
	require.NotNil(t, updated.NextDue)
	assert.Equal(t, updated.LastCompleted.AddDate(0, 0, 1), *updated.NextDue)
	assert.True(t, updated.NextDue.After(*created.NextDue) || updated.NextDue.Equal(*created.NextDue))

	// повторное выполнение отсчитывается от нового lastCompleted, не от createdAt
	again, err := manager.Update(ctx, created.ID, task.WithCompleted(true))
	require.NoError(t, err)

	require.NotNil(t, again.LastCompleted)
	require.NotNil(t, again.NextDue)
	assert.Equal(t, again.LastCompleted.AddDate(0, 0, 1), *again.NextDue)
	assert.False(t, again.LastCompleted.Before(*updated.LastCompleted))
	assert.False(t, again.Completed)
}

// TestTaskManager_Update_NonRecurringTerminal — выполнение обычной задачи
// это простая смена флага
func TestTaskManager_Update_NonRecurringTerminal(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	created, err := manager.Create(ctx, validInput("Разовая задача"))
	require.NoError(t, err)

	updated, err := manager.Update(ctx, created.ID, task.WithCompleted(true))
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Nil(t, updated.LastCompleted)
	assert.Nil(t, updated.NextDue)

	// и обратимая явным сбросом
	reverted, err := manager.Update(ctx, created.ID, task.WithCompleted(false))
	require.NoError(t, err)
	assert.False(t, reverted.Completed)
	assert.Nil(t, reverted.LastCompleted)
	assert.Nil(t, reverted.NextDue)
}

// TestTaskManager_ToggleComplete тестирует переключение через Update
func TestTaskManager_ToggleComplete(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	created, err := manager.Create(ctx, validInput("Переключаемая задача"))
	require.NoError(t, err)

	toggled, err := manager.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	back, err := manager.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)
}

// TestTaskManager_ToggleComplete_Recurring — переключение повторяющейся задачи
// запускает тот же перенос цикла
func TestTaskManager_ToggleComplete_Recurring(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	input := validInput("Повторяющаяся задача")
	input.Recurrence = task.RecurrenceDaily

	created, err := manager.Create(ctx, input)
	require.NoError(t, err)

	toggled, err := manager.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)

	assert.False(t, toggled.Completed)
	assert.NotNil(t, toggled.LastCompleted)
}

// TestTaskManager_NotFound тестирует нейтральный исход для отсутствующего id
func TestTaskManager_NotFound(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	_, err := manager.Update(ctx, 404, task.WithTitle("не важно"))
	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)

	_, err = manager.GetByID(ctx, 404)
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)

	_, err = manager.Restore(ctx, 404)
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)

	// purge отсутствующего id — тоже «ничего не произошло»
	assert.NoError(t, manager.Purge(ctx, 404))
}

// TestTaskManager_Delete_MissingID — no-op без единой записи в хранилище
func TestTaskManager_Delete_MissingID(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("LoadTasks", mock.Anything).Return([]*task.Task{}, nil)

	manager := service.NewTaskManager(mockStore)
	require.NoError(t, manager.Delete(ctx, 404))

	mockStore.AssertNotCalled(t, "SaveTasks", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "SaveTrash", mock.Anything, mock.Anything)
}

// TestTaskManager_DeleteRestore_RoundTrip — восстановленная задача
// совпадает с исходной во всех полях
func TestTaskManager_DeleteRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	manager := service.NewTaskManager(store)

	input := validInput("Задача для корзины")
	input.Notes = "заметки"
	input.Tags = []string{"дом", "срочно"}
	input.Recurrence = task.RecurrenceCustom
	input.RecurrenceInterval = strPtr("2 weeks")

	created, err := manager.Create(ctx, input)
	require.NoError(t, err)

	require.NoError(t, manager.Delete(ctx, created.ID))

	// из активной коллекции задача исчезла
	_, err = manager.GetByID(ctx, created.ID)
	require.Error(t, err)

	trash, err := manager.ListTrash(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, created.ID, trash[0].ID)
	assert.False(t, trash[0].DeletedAt.IsZero())

	restored, err := manager.Restore(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, restored)

	// корзина опустела
	trash, err = manager.ListTrash(ctx)
	require.NoError(t, err)
	assert.Empty(t, trash)
}

// TestTaskManager_Purge тестирует окончательное удаление из корзины
func TestTaskManager_Purge(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	created, err := manager.Create(ctx, validInput("Задача на выброс"))
	require.NoError(t, err)
	require.NoError(t, manager.Delete(ctx, created.ID))

	require.NoError(t, manager.Purge(ctx, created.ID))

	trash, err := manager.ListTrash(ctx)
	require.NoError(t, err)
	assert.Empty(t, trash)

	// восстановить уже нечего
	_, err = manager.Restore(ctx, created.ID)
	require.Error(t, err)
}

// TestTaskManager_TrashExpiry — записи старше срока хранения выпадают при чтении
func TestTaskManager_TrashExpiry(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	manager := service.NewTaskManager(store)

	now := time.Now()
	seed := []*task.DeletedTask{
		{
			Task:      task.Task{ID: 1, Title: "восемь дней назад", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone},
			DeletedAt: now.Add(-8 * 24 * time.Hour),
		},
		{
			Task:      task.Task{ID: 2, Title: "шесть дней назад", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone},
			DeletedAt: now.Add(-6 * 24 * time.Hour),
		},
	}
	require.NoError(t, store.SaveTrash(ctx, seed))

	trash, err := manager.ListTrash(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, int64(2), trash[0].ID)

	// чистка при чтении сохранена
	persisted, err := store.LoadTrash(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, int64(2), persisted[0].ID)
}

// TestTaskManager_TrashCapacity — 51 удаление подряд оставляет ровно 50
// самых свежих записей
func TestTaskManager_TrashCapacity(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	for i := 1; i <= 51; i++ {
		created, err := manager.Create(ctx, validInput(fmt.Sprintf("Задача %d", i)))
		require.NoError(t, err)
		require.NoError(t, manager.Delete(ctx, created.ID))
	}

	trash, err := manager.ListTrash(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 50)

	ids := make(map[int64]bool, len(trash))
	for _, d := range trash {
		ids[d.ID] = true
	}
	// первое удаление вытеснено, последнее сохранено
	assert.False(t, ids[1])
	assert.True(t, ids[51])
}

// TestTaskManager_TrashSaveDegradation тестирует лестницу деградации
// при отказе записи корзины
func TestTaskManager_TrashSaveDegradation(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	activeTask := &task.Task{
		ID: 10, Title: "удаляемая", Category: task.CategoryWork,
		Priority: task.PriorityLow, Status: task.StatusTodo,
		Recurrence: task.RecurrenceNone, CreatedAt: now,
	}
	oldTrash := []*task.DeletedTask{
		{Task: task.Task{ID: 1, Title: "a"}, DeletedAt: now.Add(-3 * time.Minute)},
		{Task: task.Task{ID: 2, Title: "b"}, DeletedAt: now.Add(-2 * time.Minute)},
		{Task: task.Task{ID: 3, Title: "c"}, DeletedAt: now.Add(-1 * time.Minute)},
	}

	mockStore := new(MockStore)
	mockStore.On("LoadTasks", mock.Anything).Return([]*task.Task{activeTask}, nil)
	mockStore.On("LoadTrash", mock.Anything).Return(oldTrash, nil)
	mockStore.On("SaveTasks", mock.Anything, mock.Anything).Return(nil)

	var lastSaved []*task.DeletedTask
	mockStore.On("SaveTrash", mock.Anything, mock.Anything).Return(storage.ErrSaveFailed).Twice()
	mockStore.On("SaveTrash", mock.Anything, mock.Anything).Return(nil).Once().Run(func(args mock.Arguments) {
		lastSaved = args.Get(1).([]*task.DeletedTask)
	})

	manager := service.NewTaskManager(mockStore, service.WithTrashCapacity(3))

	// отказ записи корзины не проваливает операцию
	require.NoError(t, manager.Delete(ctx, 10))

	// третья попытка — половина вместимости, сохранена самая свежая запись
	require.Len(t, lastSaved, 1)
	assert.Equal(t, int64(10), lastSaved[0].ID)
	mockStore.AssertExpectations(t)
}

// TestTaskManager_TrashSaveDegradation_ClearsAsLastResort — если не удалась
// даже урезанная запись, корзина очищается, операция всё равно успешна
func TestTaskManager_TrashSaveDegradation_ClearsAsLastResort(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	activeTask := &task.Task{
		ID: 10, Title: "удаляемая", Category: task.CategoryWork,
		Priority: task.PriorityLow, Status: task.StatusTodo,
		Recurrence: task.RecurrenceNone, CreatedAt: now,
	}

	mockStore := new(MockStore)
	mockStore.On("LoadTasks", mock.Anything).Return([]*task.Task{activeTask}, nil)
	mockStore.On("LoadTrash", mock.Anything).Return([]*task.DeletedTask{}, nil)
	mockStore.On("SaveTasks", mock.Anything, mock.Anything).Return(nil)
	mockStore.On("SaveTrash", mock.Anything, mock.Anything).Return(storage.ErrSaveFailed).Times(4)

	manager := service.NewTaskManager(mockStore)
	require.NoError(t, manager.Delete(ctx, 10))
	mockStore.AssertExpectations(t)
}

// TestTaskManager_ActiveSaveFailure — отказ записи активной коллекции
// честно проваливает операцию
func TestTaskManager_ActiveSaveFailure(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("LoadTasks", mock.Anything).Return([]*task.Task{}, nil)
	mockStore.On("LoadTrash", mock.Anything).Return([]*task.DeletedTask{}, nil)
	mockStore.On("SaveTasks", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	manager := service.NewTaskManager(mockStore)

	_, err := manager.Create(ctx, validInput("не сохранится"))
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeSaveFailed, businessErr.Code)
}

// TestTaskManager_ImportExport_RoundTrip — экспорт и обратный импорт
// дают эквивалентную коллекцию
func TestTaskManager_ImportExport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	first := validInput("Первая")
	first.Tags = []string{"a", "b"}
	_, err := manager.Create(ctx, first)
	require.NoError(t, err)

	second := validInput("Вторая")
	second.Recurrence = task.RecurrenceMonthly
	_, err = manager.Create(ctx, second)
	require.NoError(t, err)

	exported, err := manager.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, exported, 2)

	imported, err := manager.Import(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, exported, imported)

	after, err := manager.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, exported, after)
}

// TestTaskManager_Import_Invalid — одна неверная запись отклоняет весь импорт
func TestTaskManager_Import_Invalid(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	manager := service.NewTaskManager(store)

	_, err := manager.Create(ctx, validInput("Существующая"))
	require.NoError(t, err)

	bad := []*task.Task{
		{ID: 1, Title: "ок", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone},
		{ID: 2, Title: "", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone},
	}

	_, err = manager.Import(ctx, bad)
	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeValidation, businessErr.Code)

	// существующая коллекция не тронута
	active, err := manager.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Существующая", active[0].Title)
}

// TestTaskManager_Import_DuplicateIDs тестирует отклонение повторяющихся id
func TestTaskManager_Import_DuplicateIDs(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	dup := []*task.Task{
		{ID: 7, Title: "первая", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone},
		{ID: 7, Title: "вторая", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone},
	}

	_, err := manager.Import(ctx, dup)
	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeValidation, businessErr.Code)
}

// TestTaskManager_AddTimeAndXP тестирует накопительные счётчики
func TestTaskManager_AddTimeAndXP(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	created, err := manager.Create(ctx, validInput("Помодоро"))
	require.NoError(t, err)

	updated, err := manager.AddTime(ctx, created.ID, 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), updated.TimeSpent)

	updated, err = manager.AddTime(ctx, created.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), updated.TimeSpent)

	updated, err = manager.AwardXP(ctx, created.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(25), updated.XPEarned)

	_, err = manager.AddTime(ctx, created.ID, -5)
	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeValidation, businessErr.Code)
}

// TestTaskManager_DueReminders тестирует отбор наступивших напоминаний
func TestTaskManager_DueReminders(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewStore()
	manager := service.NewTaskManager(store)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	seed := []*task.Task{
		{ID: 1, Title: "наступило", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone, ReminderTime: timePtr(past), ReminderEnabled: true},
		{ID: 2, Title: "ещё рано", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone, ReminderTime: timePtr(future), ReminderEnabled: true},
		{ID: 3, Title: "выключено", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusTodo, Recurrence: task.RecurrenceNone, ReminderTime: timePtr(past), ReminderEnabled: false},
		{ID: 4, Title: "уже сделана", Category: task.CategoryWork, Priority: task.PriorityLow, Status: task.StatusDone, Recurrence: task.RecurrenceNone, Completed: true, ReminderTime: timePtr(past), ReminderEnabled: true},
	}
	require.NoError(t, store.SaveTasks(ctx, seed))

	due, err := manager.DueReminders(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, int64(1), due[0].ID)
}

// TestTaskManager_RestoreKeepsIDUnique — id восстановленной задачи
// не пересекается с выданными за время её жизни в корзине
func TestTaskManager_RestoreKeepsIDUnique(t *testing.T) {
	ctx := context.Background()
	manager := service.NewTaskManager(inmemory.NewStore())

	first, err := manager.Create(ctx, validInput("Первая"))
	require.NoError(t, err)
	require.NoError(t, manager.Delete(ctx, first.ID))

	second, err := manager.Create(ctx, validInput("Вторая"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	restored, err := manager.Restore(ctx, first.ID)
	require.NoError(t, err)

	active, err := manager.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.NotEqual(t, restored.ID, second.ID)
}
