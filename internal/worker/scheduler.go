package worker

import (
	"context"
	"fmt"
	"time"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// фоновые задания: чистка корзины по расписанию и проверка напоминаний

type LifecycleService interface {
	ListTrash(ctx context.Context) ([]*task.DeletedTask, error)
	DueReminders(ctx context.Context, now time.Time) ([]*task.Task, error)
}

// Notifier получает задачи с наступившим напоминанием.
// Реализация по умолчанию просто пишет в лог — push-каналов у сервиса нет.
type Notifier interface {
	Notify(t *task.Task)
}

type LogNotifier struct{}

func (LogNotifier) Notify(t *task.Task) {
	logger.Info("Reminder: напоминание по задаче",
		zap.Int64("task_id", t.ID),
		zap.String("title", t.Title))
}

type Scheduler struct {
	cron     *cron.Cron
	service  LifecycleService
	notifier Notifier

	trashSpec    string
	reminderSpec string
}

func NewScheduler(service LifecycleService, notifier Notifier, trashSpec, reminderSpec string) *Scheduler {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if trashSpec == "" {
		trashSpec = "@every 1h"
	}
	if reminderSpec == "" {
		reminderSpec = "@every 1m"
	}
	return &Scheduler{
		cron:         cron.New(),
		service:      service,
		notifier:     notifier,
		trashSpec:    trashSpec,
		reminderSpec: reminderSpec,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.trashSpec, func() { s.SweepTrash(ctx) }); err != nil {
		return fmt.Errorf("регистрация чистки корзины: %w", err)
	}
	if _, err := s.cron.AddFunc(s.reminderSpec, func() { s.CheckReminders(ctx) }); err != nil {
		return fmt.Errorf("регистрация проверки напоминаний: %w", err)
	}

	s.cron.Start()
	logger.Info("Worker: фоновые задания запущены",
		zap.String("trash_sweep", s.trashSpec),
		zap.String("reminder_check", s.reminderSpec))
	return nil
}

func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	logger.Info("Worker: фоновые задания остановлены")
}

// SweepTrash читает корзину — само чтение применяет срок хранения
// и вместимость и сохраняет вычищенное состояние
func (s *Scheduler) SweepTrash(ctx context.Context) {
	start := time.Now()

	trash, err := s.service.ListTrash(ctx)
	if err != nil {
		logger.Warn("Worker: ошибка чистки корзины", zap.Error(err))
		return
	}

	logger.Info("Worker: чистка корзины завершена",
		zap.Int("remaining", len(trash)),
		zap.Duration("ms", time.Since(start)))
}

func (s *Scheduler) CheckReminders(ctx context.Context) {
	start := time.Now()

	due, err := s.service.DueReminders(ctx, time.Now())
	if err != nil {
		logger.Warn("Worker: ошибка проверки напоминаний", zap.Error(err))
		return
	}

	for _, t := range due {
		s.notifier.Notify(t)
	}

	logger.Info("Worker: проверка напоминаний завершена",
		zap.Int("due", len(due)),
		zap.Duration("ms", time.Since(start)))
}
