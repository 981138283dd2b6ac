package recurrence

import (
	"strconv"
	"strings"
	"time"

	"taskKeeper/internal/logger"
	"taskKeeper/internal/models/task"

	"go.uber.org/zap"
)

// здесь считается дата следующего повторения задачи

// NextDue вычисляет следующую дату повторения задачи.
// Точка отсчёта — lastCompleted, а до первого выполнения — createdAt.
// Для задач без повторения возвращается nil.
func NextDue(t *task.Task) *time.Time {
	base := t.CreatedAt
	if t.LastCompleted != nil {
		base = *t.LastCompleted
	}

	switch t.Recurrence {
	case task.RecurrenceNone:
		return nil
	case task.RecurrenceDaily:
		return timePtr(base.AddDate(0, 0, 1))
	case task.RecurrenceWeekly:
		return timePtr(base.AddDate(0, 0, 7))
	case task.RecurrenceMonthly:
		// переполнение дня месяца (31 янв + месяц) нормализуется
		// стандартной библиотекой: дата перекатывается вперёд
		return timePtr(base.AddDate(0, 1, 0))
	case task.RecurrenceCustom:
		return customNext(base, t.RecurrenceInterval)
	}

	return nil
}

// customNext разбирает интервал вида "3" (дни) или "2 weeks".
// Неразборчивый интервал сводится к повторению через день —
// исторически так вела себя исходная версия, падение здесь недопустимо.
func customNext(base time.Time, interval *string) *time.Time {
	if interval == nil {
		return nil
	}

	raw := strings.TrimSpace(*interval)
	if raw == "" {
		return nil
	}

	// голое число — количество дней
	if amount, err := strconv.Atoi(raw); err == nil {
		if amount < 1 {
			return fallback(base, raw, "неположительное количество")
		}
		return timePtr(base.AddDate(0, 0, amount))
	}

	tokens := strings.Fields(raw)
	if len(tokens) < 2 {
		return fallback(base, raw, "меньше двух токенов")
	}

	amount, err := strconv.Atoi(tokens[0])
	if err != nil {
		return fallback(base, raw, "количество не является числом")
	}
	if amount < 1 {
		return fallback(base, raw, "неположительное количество")
	}

	switch strings.ToLower(tokens[1]) {
	case "day", "days":
		return timePtr(base.AddDate(0, 0, amount))
	case "week", "weeks":
		return timePtr(base.AddDate(0, 0, amount*7))
	case "month", "months":
		return timePtr(base.AddDate(0, amount, 0))
	}

	// незнакомая единица — это не повторение
	return nil
}

func fallback(base time.Time, raw, reason string) *time.Time {
	logger.Warn("Recurrence: интервал не разобран, повторение через 1 день",
		zap.String("interval", raw),
		zap.String("reason", reason))
	return timePtr(base.AddDate(0, 0, 1))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
