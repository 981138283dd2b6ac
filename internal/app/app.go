package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskKeeper/internal/config"
	"taskKeeper/internal/handlers"
	"taskKeeper/internal/logger"
	"taskKeeper/internal/middleware"
	"taskKeeper/internal/service"
	"taskKeeper/internal/storage"
	"taskKeeper/internal/storage/file"
	"taskKeeper/internal/storage/inmemory"
	"taskKeeper/internal/storage/postgres"
	"taskKeeper/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type App struct {
	config    *config.Config
	server    *http.Server
	store     storage.Store
	manager   *service.TaskManager
	worker    *worker.Scheduler
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("App: завершение работы логгирования")
		logger.Sync()
	})

	store, err := a.buildStore(ctx)
	if err != nil {
		return err
	}
	a.store = store

	a.manager = service.NewTaskManager(store,
		service.WithTrashRetention(a.config.Trash.Retention()),
		service.WithTrashCapacity(a.config.Trash.Capacity),
	)

	a.worker = worker.NewScheduler(a.manager, worker.LogNotifier{},
		a.config.Worker.TrashSweep,
		a.config.Worker.ReminderCheck,
	)

	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: a.router(),
	}

	return nil
}

func (a *App) buildStore(ctx context.Context) (storage.Store, error) {
	switch a.config.Storage.Type {
	case "inmemory":
		return inmemory.NewStore(), nil
	case "file", "":
		return file.New(a.config.Storage.File.Dir)
	case "postgres":
		store, err := postgres.New(ctx, a.config.Storage.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("подключение к postgres: %w", err)
		}
		a.shutdowns = append(a.shutdowns, store.Close)
		return store, nil
	}
	return nil, fmt.Errorf("неизвестный тип хранилища: %s", a.config.Storage.Type)
}

func (a *App) router() *chi.Mux {
	taskHandler := handlers.NewTaskHandler(a.manager)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(100))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetTasks)  // GET /tasks
		r.Post("/", taskHandler.PostTask) // POST /tasks

		r.Get("/export", taskHandler.ExportTasks)  // GET /tasks/export
		r.Post("/import", taskHandler.ImportTasks) // POST /tasks/import

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/toggle", taskHandler.ToggleTask) // POST /tasks/{id}/toggle
			r.Post("/time", taskHandler.AddTaskTime)  // POST /tasks/{id}/time
			r.Post("/xp", taskHandler.AwardTaskXP)    // POST /tasks/{id}/xp
		})
	})

	r.Route("/trash", func(r chi.Router) {
		r.Get("/", taskHandler.GetTrash) // GET /trash

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/restore", taskHandler.RestoreTask) // POST /trash/{id}/restore
			r.Delete("/", taskHandler.PurgeTask)        // DELETE /trash/{id}
		})
	})

	r.Get("/health", taskHandler.HealthCheck)

	return r
}

func (a *App) Run(ctx context.Context) error {
	if err := a.worker.Start(ctx); err != nil {
		return fmt.Errorf("запуск фоновых заданий: %w", err)
	}
	a.shutdowns = append(a.shutdowns, a.worker.Stop)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("App: сервер запущен на " + a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.shutdown()
		return fmt.Errorf("работа сервера: %w", err)
	case <-stop:
		logger.Info("App: получен сигнал остановки")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("App: ошибка остановки сервера", err)
	}
	a.shutdown()
	return nil
}

func (a *App) shutdown() {
	// в порядке, обратном инициализации
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
