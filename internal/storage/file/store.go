package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"
	"taskKeeper/internal/storage"

	"go.uber.org/zap"
)

const tasksFile = "tasks.json"
const trashFile = "trash.json"

// Store пишет каждую коллекцию отдельным JSON-файлом в каталоге dir.
// Запись атомарная: сначала временный файл, потом rename.
type Store struct {
	dir string
	mtx *sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("создание каталога %s: %w", dir, err)
	}
	return &Store{
		dir: dir,
		mtx: &sync.Mutex{},
	}, nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("каталог хранилища недоступен: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s не является каталогом", s.dir)
	}
	return nil
}

func (s *Store) LoadTasks(ctx context.Context) ([]*task.Task, error) {
	var tasks []*task.Task
	if err := s.load(tasksFile, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return tasks, nil
}

func (s *Store) SaveTasks(ctx context.Context, tasks []*task.Task) error {
	return s.save(tasksFile, tasks)
}

func (s *Store) LoadTrash(ctx context.Context) ([]*task.DeletedTask, error) {
	var trash []*task.DeletedTask
	if err := s.load(trashFile, &trash); err != nil {
		return nil, err
	}
	if trash == nil {
		trash = []*task.DeletedTask{}
	}
	return trash, nil
}

func (s *Store) SaveTrash(ctx context.Context, trash []*task.DeletedTask) error {
	return s.save(trashFile, trash)
}

// load читает коллекцию из файла.
// Отсутствующий или испорченный файл — это пустая коллекция, а не падение.
func (s *Store) load(name string, target any) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("чтение %s: %w", path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		logger.Warn("Storage: файл коллекции испорчен, коллекция считается пустой",
			zap.String("file", path),
			zap.Error(err))
		return nil
	}
	return nil
}

func (s *Store) save(name string, value any) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("запись %s: %w: %w", tmp, storage.ErrSaveFailed, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("переименование %s: %w: %w", tmp, storage.ErrSaveFailed, err)
	}
	return nil
}
