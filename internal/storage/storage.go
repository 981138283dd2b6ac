package storage

import (
	"context"
	"errors"

	"taskKeeper/internal/models/task"
)

// ErrSaveFailed помечает отказ записи коллекции (например, переполнение квоты).
// Менеджер жизненного цикла различает по ней отказ сохранения корзины.
var ErrSaveFailed = errors.New("не удалось сохранить коллекцию")

// Store — порт хранилища: по одному JSON-документу на коллекцию.
// Каждая операция менеджера читает коллекцию целиком и записывает обратно целиком.
type Store interface {
	LoadTasks(ctx context.Context) ([]*task.Task, error)
	SaveTasks(ctx context.Context, tasks []*task.Task) error
	LoadTrash(ctx context.Context) ([]*task.DeletedTask, error)
	SaveTrash(ctx context.Context, trash []*task.DeletedTask) error
	HealthCheck(ctx context.Context) error
}
