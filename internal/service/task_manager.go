package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"
	"taskKeeper/internal/recurrence"
	"taskKeeper/internal/storage"

	"go.uber.org/zap"
)

// менеджер жизненного цикла задач: CRUD, цикл выполнения повторяющихся
// задач и корзина с политикой хранения

const DefaultTrashRetention = 7 * 24 * time.Hour
const DefaultTrashCapacity = 50

type TaskManager struct {
	store     storage.Store
	retention time.Duration
	capacity  int
}

type ManagerOption func(*TaskManager)

func WithTrashRetention(retention time.Duration) ManagerOption {
	return func(m *TaskManager) {
		if retention > 0 {
			m.retention = retention
		}
	}
}

func WithTrashCapacity(capacity int) ManagerOption {
	return func(m *TaskManager) {
		if capacity > 0 {
			m.capacity = capacity
		}
	}
}

func NewTaskManager(store storage.Store, options ...ManagerOption) *TaskManager {
	m := &TaskManager{
		store:     store,
		retention: DefaultTrashRetention,
		capacity:  DefaultTrashCapacity,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *TaskManager) HealthCheck(ctx context.Context) error {
	if err := m.store.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

type CreateTaskInput struct {
	Title              string
	Notes              string
	Tags               []string
	Category           task.Category
	Priority           task.Priority
	DueDate            *time.Time
	Recurrence         task.Recurrence
	RecurrenceInterval *string
	ReminderTime       *time.Time
	ReminderEnabled    bool
	Attachment         *task.Attachment
	Links              []task.Link
}

// Create создаёт задачу: статус todo, completed=false, lastCompleted пуст.
// Для повторяющейся задачи сразу считается nextDue от createdAt.
func (m *TaskManager) Create(ctx context.Context, input CreateTaskInput) (*task.Task, error) {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}
	trash, err := m.store.LoadTrash(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка корзины: %w", err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	newTask := &task.Task{
		ID:                 nextID(tasks, trash),
		Title:              strings.TrimSpace(input.Title),
		Notes:              input.Notes,
		Tags:               tags,
		Category:           input.Category,
		Priority:           input.Priority,
		Status:             task.StatusTodo,
		Recurrence:         input.Recurrence,
		RecurrenceInterval: input.RecurrenceInterval,
		Completed:          false,
		CreatedAt:          time.Now(),
		DueDate:            input.DueDate,
		ReminderTime:       input.ReminderTime,
		ReminderEnabled:    input.ReminderEnabled,
		Attachment:         input.Attachment,
		Links:              input.Links,
	}

	if err := validateTask(newTask); err != nil {
		return nil, err
	}

	if newTask.Recurrence != task.RecurrenceNone {
		newTask.NextDue = recurrence.NextDue(newTask)
	}

	tasks = append(tasks, newTask)
	if err := m.store.SaveTasks(ctx, tasks); err != nil {
		logger.Error("Service: не удалось сохранить задачи при создании", err)
		return nil, NewSaveFailed("tasks", err)
	}

	logger.Info("Service: задача создана",
		zap.Int64("task_id", newTask.ID),
		zap.String("recurrence", string(newTask.Recurrence)))
	return newTask.Clone(), nil
}

// Update применяет опции к копии задачи и сохраняет результат.
// Переход в completed=true у повторяющейся задачи не завершает её:
// фиксируется lastCompleted, пересчитывается nextDue от уже обновлённого
// состояния, а completed принудительно сбрасывается — задача возвращается
// в todo до следующего цикла.
func (m *TaskManager) Update(ctx context.Context, id int64, options ...task.TaskOption) (*task.Task, error) {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}

	idx := indexOf(tasks, id)
	if idx < 0 {
		logger.Info("Service: задача не найдена", zap.Int64("target_id", id))
		return nil, NewNotFound("задача", id)
	}

	existing := tasks[idx]
	updated := existing.Clone()
	for _, opt := range options {
		if opt != nil {
			opt(updated)
		}
	}

	if err := validateTask(updated); err != nil {
		return nil, err
	}

	if updated.Completed && !existing.Completed && updated.Recurrence != task.RecurrenceNone {
		now := time.Now()
		updated.LastCompleted = &now
		updated.NextDue = recurrence.NextDue(updated)
		updated.Completed = false
		updated.Status = task.StatusTodo
	}

	tasks[idx] = updated
	if err := m.store.SaveTasks(ctx, tasks); err != nil {
		logger.Error("Service: не удалось сохранить задачи при обновлении", err)
		return nil, NewSaveFailed("tasks", err)
	}

	return updated.Clone(), nil
}

// ToggleComplete инвертирует completed через Update,
// так что повторяющаяся задача получает тот же перенос цикла
func (m *TaskManager) ToggleComplete(ctx context.Context, id int64) (*task.Task, error) {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}

	idx := indexOf(tasks, id)
	if idx < 0 {
		logger.Info("Service: задача не найдена", zap.Int64("target_id", id))
		return nil, NewNotFound("задача", id)
	}

	return m.Update(ctx, id, task.WithCompleted(!tasks[idx].Completed))
}

// AddTime накапливает секунды таймера помодоро
func (m *TaskManager) AddTime(ctx context.Context, id int64, seconds int64) (*task.Task, error) {
	if seconds <= 0 {
		return nil, NewValidationError("seconds", "должно быть положительным числом")
	}
	return m.Update(ctx, id, task.AddTimeSpent(seconds))
}

// AwardXP начисляет очки геймификации
func (m *TaskManager) AwardXP(ctx context.Context, id int64, points int64) (*task.Task, error) {
	if points <= 0 {
		return nil, NewValidationError("points", "должно быть положительным числом")
	}
	return m.Update(ctx, id, task.AddXP(points))
}

// Delete переносит задачу из активной коллекции в корзину.
// Удаление отсутствующего id — no-op, ничего не сохраняется.
func (m *TaskManager) Delete(ctx context.Context, id int64) error {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("загрузка задач: %w", err)
	}

	idx := indexOf(tasks, id)
	if idx < 0 {
		logger.Info("Service: удаление несуществующей задачи пропущено", zap.Int64("target_id", id))
		return nil
	}

	deleted := tasks[idx]
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	trash, err := m.store.LoadTrash(ctx)
	if err != nil {
		return fmt.Errorf("загрузка корзины: %w", err)
	}

	trash = append(trash, &task.DeletedTask{
		Task:      *deleted.Clone(),
		DeletedAt: time.Now(),
	})
	trash = m.pruneTrash(trash)

	if err := m.store.SaveTasks(ctx, tasks); err != nil {
		logger.Error("Service: не удалось сохранить задачи при удалении", err)
		return NewSaveFailed("tasks", err)
	}
	m.saveTrashDegraded(ctx, trash)

	logger.Info("Service: задача перенесена в корзину", zap.Int64("task_id", id))
	return nil
}

// Restore возвращает задачу из корзины в активную коллекцию
func (m *TaskManager) Restore(ctx context.Context, id int64) (*task.Task, error) {
	trash, err := m.store.LoadTrash(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка корзины: %w", err)
	}
	trash = m.pruneTrash(trash)

	idx := -1
	for i, d := range trash {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Info("Service: задача не найдена в корзине", zap.Int64("target_id", id))
		return nil, NewNotFound("задача в корзине", id)
	}

	restored := trash[idx].Task.Clone()
	trash = append(trash[:idx], trash[idx+1:]...)

	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}
	tasks = append(tasks, restored)

	if err := m.store.SaveTasks(ctx, tasks); err != nil {
		logger.Error("Service: не удалось сохранить задачи при восстановлении", err)
		return nil, NewSaveFailed("tasks", err)
	}
	m.saveTrashDegraded(ctx, trash)

	logger.Info("Service: задача восстановлена из корзины", zap.Int64("task_id", id))
	return restored.Clone(), nil
}

// Purge окончательно удаляет запись из корзины, активную коллекцию не трогает
func (m *TaskManager) Purge(ctx context.Context, id int64) error {
	trash, err := m.store.LoadTrash(ctx)
	if err != nil {
		return fmt.Errorf("загрузка корзины: %w", err)
	}
	before := len(trash)
	trash = m.pruneTrash(trash)

	idx := -1
	for i, d := range trash {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx >= 0 {
		trash = append(trash[:idx], trash[idx+1:]...)
	}

	if idx >= 0 || len(trash) != before {
		m.saveTrashDegraded(ctx, trash)
	}
	return nil
}

func (m *TaskManager) ListActive(ctx context.Context) ([]*task.Task, error) {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}

	res := make([]*task.Task, len(tasks))
	for i, t := range tasks {
		res[i] = t.Clone()
	}
	return res, nil
}

func (m *TaskManager) GetByID(ctx context.Context, id int64) (*task.Task, error) {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}

	idx := indexOf(tasks, id)
	if idx < 0 {
		logger.Info("Service: задача не найдена", zap.Int64("target_id", id))
		return nil, NewNotFound("задача", id)
	}
	return tasks[idx].Clone(), nil
}

// ListTrash возвращает корзину, применив срок хранения и вместимость.
// Вычищенное при чтении состояние сразу сохраняется.
func (m *TaskManager) ListTrash(ctx context.Context) ([]*task.DeletedTask, error) {
	trash, err := m.store.LoadTrash(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка корзины: %w", err)
	}

	before := len(trash)
	trash = m.pruneTrash(trash)
	if len(trash) != before {
		trash = m.saveTrashDegraded(ctx, trash)
	}

	res := make([]*task.DeletedTask, len(trash))
	for i, d := range trash {
		res[i] = d.Clone()
	}
	return res, nil
}

// Import заменяет активную коллекцию импортированными задачами.
// Каждая запись нормализуется и проверяется так же, как при создании;
// одна неверная запись отклоняет весь импорт.
func (m *TaskManager) Import(ctx context.Context, tasks []*task.Task) ([]*task.Task, error) {
	seen := make(map[int64]bool, len(tasks))
	imported := make([]*task.Task, len(tasks))

	for i, t := range tasks {
		if t == nil {
			return nil, NewValidationError("tasks", fmt.Sprintf("запись %d пуста", i))
		}
		if seen[t.ID] {
			return nil, NewValidationError("id", fmt.Sprintf("повторяющийся id %d", t.ID))
		}
		seen[t.ID] = true

		norm := t.Clone()
		if norm.Tags == nil {
			norm.Tags = []string{}
		}
		if err := validateTask(norm); err != nil {
			return nil, err
		}
		imported[i] = norm
	}

	if err := m.store.SaveTasks(ctx, imported); err != nil {
		logger.Error("Service: не удалось сохранить импортированные задачи", err)
		return nil, NewSaveFailed("tasks", err)
	}

	logger.Info("Service: импорт завершён", zap.Int("count", len(imported)))

	res := make([]*task.Task, len(imported))
	for i, t := range imported {
		res[i] = t.Clone()
	}
	return res, nil
}

// DueReminders отбирает задачи с наступившим включённым напоминанием
func (m *TaskManager) DueReminders(ctx context.Context, now time.Time) ([]*task.Task, error) {
	tasks, err := m.store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка задач: %w", err)
	}

	var due []*task.Task
	for _, t := range tasks {
		if t.ReminderEnabled && t.ReminderTime != nil && !t.Completed && !t.ReminderTime.After(now) {
			due = append(due, t.Clone())
		}
	}
	return due, nil
}

// pruneTrash применяет политику хранения корзины: сначала срок, потом вместимость.
// Порядок вытеснения единый на чтении и записи — старейшие по deletedAt первыми,
// так что последнее удаление не теряется никогда.
func (m *TaskManager) pruneTrash(trash []*task.DeletedTask) []*task.DeletedTask {
	cutoff := time.Now().Add(-m.retention)

	kept := trash[:0:0]
	for _, d := range trash {
		if d.DeletedAt.After(cutoff) {
			kept = append(kept, d)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].DeletedAt.Before(kept[j].DeletedAt)
	})

	if len(kept) > m.capacity {
		kept = kept[len(kept)-m.capacity:]
	}
	return kept
}

// saveTrashDegraded сохраняет корзину, деградируя при отказах записи:
// повтор с урезанием до вместимости, потом до половины, в крайнем случае
// корзина очищается. Потеря корзины допустима, отказ операции — нет.
func (m *TaskManager) saveTrashDegraded(ctx context.Context, trash []*task.DeletedTask) []*task.DeletedTask {
	err := m.store.SaveTrash(ctx, trash)
	if err == nil {
		return trash
	}
	logger.Warn("Service: не удалось сохранить корзину, повтор с урезанием до вместимости",
		zap.Error(err),
		zap.Int("size", len(trash)))

	trimmed := tail(trash, m.capacity)
	if err := m.store.SaveTrash(ctx, trimmed); err == nil {
		return trimmed
	}

	half := tail(trash, m.capacity/2)
	if err := m.store.SaveTrash(ctx, half); err == nil {
		logger.Warn("Service: корзина урезана до половины вместимости", zap.Int("size", len(half)))
		return half
	}

	logger.Error("Service: корзина очищена после неудачных попыток записи", err)
	if err := m.store.SaveTrash(ctx, []*task.DeletedTask{}); err != nil {
		logger.Error("Service: не удалось записать даже пустую корзину", err)
	}
	return []*task.DeletedTask{}
}

// tail оставляет count самых свежих по deletedAt записей
func tail(trash []*task.DeletedTask, count int) []*task.DeletedTask {
	if count < 0 {
		count = 0
	}
	sorted := make([]*task.DeletedTask, len(trash))
	copy(sorted, trash)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DeletedAt.Before(sorted[j].DeletedAt)
	})
	if len(sorted) > count {
		sorted = sorted[len(sorted)-count:]
	}
	return sorted
}

func indexOf(tasks []*task.Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID выдаёт id строже максимума по обеим коллекциям,
// чтобы восстановление из корзины не столкнулось с новой задачей
func nextID(tasks []*task.Task, trash []*task.DeletedTask) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	for _, d := range trash {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1
}

// validateTask проверяет обязательные поля.
// Неразборчивый recurrenceInterval ошибкой не считается — калькулятор
// сведёт его к повторению через день; ошибкой является только custom
// вообще без интервала.
func validateTask(t *task.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "не может быть пустым")
	}
	if len([]rune(t.Title)) > task.MaxTitleLen {
		return NewValidationError("title", fmt.Sprintf("длиннее %d символов", task.MaxTitleLen))
	}
	if !t.Category.Valid() {
		return NewValidationError("category", fmt.Sprintf("недопустимое значение '%s'", t.Category))
	}
	if !t.Priority.Valid() {
		return NewValidationError("priority", fmt.Sprintf("недопустимое значение '%s'", t.Priority))
	}
	if !t.Status.Valid() {
		return NewValidationError("status", fmt.Sprintf("недопустимое значение '%s'", t.Status))
	}
	if !t.Recurrence.Valid() {
		return NewValidationError("recurrence", fmt.Sprintf("недопустимое значение '%s'", t.Recurrence))
	}
	if t.Recurrence == task.RecurrenceCustom {
		if t.RecurrenceInterval == nil || strings.TrimSpace(*t.RecurrenceInterval) == "" {
			return NewValidationError("recurrenceInterval", "обязателен при recurrence=custom")
		}
	}
	return nil
}
