package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"
	"taskKeeper/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const tasksCollection = "tasks"
const trashCollection = "trash"

// Store хранит каждую коллекцию одним jsonb-документом в таблице collections.
// Семантика та же, что у файлового хранилища: документ читается и
// переписывается целиком.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Storage: ошибка разбора строки подключения", err)
		return nil, fmt.Errorf("разбор строки подключения: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Storage: ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Storage: неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Storage: успешное подключение к PostgreSQL")
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS collections (
				name TEXT PRIMARY KEY,
				document JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		logger.Error("Storage: не удалось создать таблицу collections", err)
		return fmt.Errorf("создание схемы: %w", err)
	}
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
	logger.Info("Storage: закрытие всех соединений PostgreSQL")
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Storage: неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

func (s *Store) LoadTasks(ctx context.Context) ([]*task.Task, error) {
	var tasks []*task.Task
	if err := s.load(ctx, tasksCollection, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return tasks, nil
}

func (s *Store) SaveTasks(ctx context.Context, tasks []*task.Task) error {
	return s.save(ctx, tasksCollection, tasks)
}

func (s *Store) LoadTrash(ctx context.Context) ([]*task.DeletedTask, error) {
	var trash []*task.DeletedTask
	if err := s.load(ctx, trashCollection, &trash); err != nil {
		return nil, err
	}
	if trash == nil {
		trash = []*task.DeletedTask{}
	}
	return trash, nil
}

func (s *Store) SaveTrash(ctx context.Context, trash []*task.DeletedTask) error {
	return s.save(ctx, trashCollection, trash)
}

func (s *Store) load(ctx context.Context, name string, target any) error {
	start := time.Now()

	query := `SELECT document FROM collections WHERE name = $1`

	var document []byte
	err := s.pool.QueryRow(ctx, query, name).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		logger.Error("Storage: не удалось прочитать коллекцию", err, zap.String("collection", name))
		return fmt.Errorf("чтение коллекции %s: %w", name, err)
	}

	if err := json.Unmarshal(document, target); err != nil {
		logger.Warn("Storage: документ коллекции испорчен, коллекция считается пустой",
			zap.String("collection", name),
			zap.Error(err))
		return nil
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Storage: медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Store) save(ctx context.Context, name string, value any) error {
	start := time.Now()

	document, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("сериализация коллекции %s: %w", name, err)
	}

	query := `INSERT INTO collections (name, document, updated_at)
				VALUES ($1, $2, NOW())
				ON CONFLICT (name) DO UPDATE
				SET document = EXCLUDED.document, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, name, document); err != nil {
		logger.Error("Storage: не удалось записать коллекцию", err, zap.String("collection", name))
		return fmt.Errorf("запись коллекции %s: %w: %w", name, storage.ErrSaveFailed, err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Storage: медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}
