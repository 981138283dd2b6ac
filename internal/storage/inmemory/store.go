package inmemory

import (
	"context"
	"sync"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"
)

// Store хранит обе коллекции в памяти.
// Используется в тестах и как хранилище по умолчанию при разработке.
type Store struct {
	tasks []*task.Task
	trash []*task.DeletedTask
	mtx   *sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		tasks: []*task.Task{},
		trash: []*task.DeletedTask{},
		mtx:   &sync.RWMutex{},
	}
}

func (s *Store) HealthCheck(ctx context.Context) error {
	logger.Info("Storage: хранилище в памяти доступно")
	return nil
}

func (s *Store) LoadTasks(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, len(s.tasks))
	for i, t := range s.tasks {
		res[i] = t.Clone()
	}
	return res, nil
}

func (s *Store) SaveTasks(ctx context.Context, tasks []*task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored := make([]*task.Task, len(tasks))
	for i, t := range tasks {
		stored[i] = t.Clone()
	}
	s.tasks = stored
	return nil
}

func (s *Store) LoadTrash(ctx context.Context) ([]*task.DeletedTask, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.DeletedTask, len(s.trash))
	for i, d := range s.trash {
		res[i] = d.Clone()
	}
	return res, nil
}

func (s *Store) SaveTrash(ctx context.Context, trash []*task.DeletedTask) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored := make([]*task.DeletedTask, len(trash))
	for i, d := range trash {
		stored[i] = d.Clone()
	}
	s.trash = stored
	return nil
}
