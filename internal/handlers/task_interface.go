package handlers

import (
	"context"
	"time"

	"taskKeeper/internal/models/task"
	"taskKeeper/internal/service"
)

type TaskService interface {
	Create(context.Context, service.CreateTaskInput) (*task.Task, error)
	Update(context.Context, int64, ...task.TaskOption) (*task.Task, error)
	ToggleComplete(context.Context, int64) (*task.Task, error)
	AddTime(context.Context, int64, int64) (*task.Task, error)
	AwardXP(context.Context, int64, int64) (*task.Task, error)
	Delete(context.Context, int64) error
	Restore(context.Context, int64) (*task.Task, error)
	Purge(context.Context, int64) error
	ListActive(context.Context) ([]*task.Task, error)
	ListTrash(context.Context) ([]*task.DeletedTask, error)
	GetByID(context.Context, int64) (*task.Task, error)
	Import(context.Context, []*task.Task) ([]*task.Task, error)
	DueReminders(context.Context, time.Time) ([]*task.Task, error)
	HealthCheck(context.Context) error
}
